package benchmark

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func init() { register(ginFramework{}) }

type ginFramework struct{}

func (ginFramework) Name() string { return "gin" }

func (ginFramework) Start(addr string) (*Handle, error) {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, HelloBody)
	})
	return serveHTTP(addr, r)
}
