package benchmark

import (
	"context"
	"net"
	"net/http"
	"sort"
)

const (
	// HelloBody is the exact payload every framework entry returns for GET /.
	// The load generator measures dispatch overhead, so the body never varies.
	HelloBody = "Hello, World!"

	// DefaultAddr is where the benchmarked server binds unless overridden.
	DefaultAddr = "127.0.0.1:3000"
)

// Handle represents a running framework server and how to stop it.
type Handle struct {
	Addr string
	Stop func(context.Context) error
}

// Framework is a single benchmark target: one library, one hello-world route.
// Start must not return before the listener accepts connections.
type Framework interface {
	Name() string
	Start(addr string) (*Handle, error)
}

var registry = map[string]Framework{}

func register(f Framework) {
	registry[f.Name()] = f
}

// Lookup returns the framework registered under name.
func Lookup(name string) (Framework, bool) {
	f, ok := registry[name]
	return f, ok
}

// FrameworkNames returns all registered framework names, sorted.
func FrameworkNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// serveHTTP binds addr synchronously and serves handler in the background.
// Shared by every entry whose router implements http.Handler.
func serveHTTP(addr string, handler http.Handler) (*Handle, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	srv := &http.Server{Handler: handler}
	go func() { _ = srv.Serve(ln) }()
	return &Handle{Addr: ln.Addr().String(), Stop: srv.Shutdown}, nil
}
