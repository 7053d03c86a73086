package benchmark

import (
	"github.com/kataras/iris/v12"
)

func init() { register(irisFramework{}) }

type irisFramework struct{}

func (irisFramework) Name() string { return "iris" }

func (irisFramework) Start(addr string) (*Handle, error) {
	app := iris.New()
	app.Configure(iris.WithoutStartupLog, iris.WithOptimizations)
	app.Get("/", func(ctx iris.Context) {
		_, _ = ctx.WriteString(HelloBody)
	})
	// Build the app so it can be served as a plain http.Handler.
	if err := app.Build(); err != nil {
		return nil, err
	}
	return serveHTTP(addr, app)
}
