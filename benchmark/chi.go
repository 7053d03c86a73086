package benchmark

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func init() { register(chiFramework{}) }

type chiFramework struct{}

func (chiFramework) Name() string { return "chi" }

func (chiFramework) Start(addr string) (*Handle, error) {
	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(HelloBody))
	})
	return serveHTTP(addr, r)
}
