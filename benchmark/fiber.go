package benchmark

import (
	"context"
	"net"

	"github.com/gofiber/fiber/v2"
)

func init() { register(fiberFramework{}) }

// fiberFramework runs on fasthttp under the hood, so it manages its own
// listener instead of going through serveHTTP.
type fiberFramework struct{}

func (fiberFramework) Name() string { return "fiber" }

func (fiberFramework) Start(addr string) (*Handle, error) {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(HelloBody)
	})
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	go func() { _ = app.Listener(ln) }()
	stop := func(ctx context.Context) error {
		return app.ShutdownWithContext(ctx)
	}
	return &Handle{Addr: ln.Addr().String(), Stop: stop}, nil
}
