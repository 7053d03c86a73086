package benchmark

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func init() { register(echoFramework{}) }

type echoFramework struct{}

func (echoFramework) Name() string { return "echo" }

func (echoFramework) Start(addr string) (*Handle, error) {
	e := echo.New()
	e.HideBanner, e.HidePort = true, true
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, HelloBody)
	})
	return serveHTTP(addr, e)
}
