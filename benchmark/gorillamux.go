package benchmark

import (
	"net/http"

	"github.com/gorilla/mux"
)

func init() { register(gorillaMux{}) }

type gorillaMux struct{}

func (gorillaMux) Name() string { return "gorilla-mux" }

func (gorillaMux) Start(addr string) (*Handle, error) {
	r := mux.NewRouter()
	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(HelloBody))
	}).Methods(http.MethodGet)
	return serveHTTP(addr, r)
}
