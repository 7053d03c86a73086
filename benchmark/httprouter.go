package benchmark

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func init() { register(httprouterFramework{}) }

type httprouterFramework struct{}

func (httprouterFramework) Name() string { return "httprouter" }

func (httprouterFramework) Start(addr string) (*Handle, error) {
	r := httprouter.New()
	r.GET("/", func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(HelloBody))
	})
	return serveHTTP(addr, r)
}
