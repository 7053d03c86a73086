package benchmark

import (
	"net/http"

	"github.com/uptrace/bunrouter"
)

func init() { register(bunrouterFramework{}) }

type bunrouterFramework struct{}

func (bunrouterFramework) Name() string { return "bunrouter" }

func (bunrouterFramework) Start(addr string) (*Handle, error) {
	r := bunrouter.New()
	r.GET("/", func(w http.ResponseWriter, _ bunrouter.Request) error {
		w.Header().Set("Content-Type", "text/plain")
		_, err := w.Write([]byte(HelloBody))
		return err
	})
	return serveHTTP(addr, r)
}
