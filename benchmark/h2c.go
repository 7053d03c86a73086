package benchmark

import (
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// netHTTPH2C serves the same mux over cleartext HTTP/2, for load generators
// that speak h2c. Plain HTTP/1.1 clients still work through the h2c handler.
type netHTTPH2C struct{}

func (netHTTPH2C) Name() string { return "nethttp-h2c" }

func (netHTTPH2C) Start(addr string) (*Handle, error) {
	h2s := &http2.Server{}
	return serveHTTP(addr, h2c.NewHandler(helloMux(), h2s))
}
