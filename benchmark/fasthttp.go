package benchmark

import (
	"context"
	"net"

	"github.com/valyala/fasthttp"
)

func init() { register(fasthttpFramework{}) }

type fasthttpFramework struct{}

func (fasthttpFramework) Name() string { return "fasthttp" }

func (fasthttpFramework) Start(addr string) (*Handle, error) {
	srv := &fasthttp.Server{
		Handler: func(ctx *fasthttp.RequestCtx) {
			if !ctx.IsGet() || string(ctx.Path()) != "/" {
				ctx.Error(fasthttp.StatusMessage(fasthttp.StatusNotFound), fasthttp.StatusNotFound)
				return
			}
			ctx.SetContentType("text/plain")
			ctx.SetBodyString(HelloBody)
		},
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	go func() { _ = srv.Serve(ln) }()
	stop := func(ctx context.Context) error {
		return srv.ShutdownWithContext(ctx)
	}
	return &Handle{Addr: ln.Addr().String(), Stop: stop}, nil
}
