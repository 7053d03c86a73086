package benchmark

import "net/http"

func init() {
	register(netHTTP{})
	register(netHTTPH2C{})
}

// netHTTP is the stdlib baseline every other entry is compared against.
type netHTTP struct{}

func (netHTTP) Name() string { return "nethttp" }

func (netHTTP) Start(addr string) (*Handle, error) {
	return serveHTTP(addr, helloMux())
}

func helloMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(HelloBody))
	})
	return mux
}
