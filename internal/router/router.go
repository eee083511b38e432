// Package router builds the Echo router: global middleware, system routes and
// the /api route groups.
package router

import (
	"github.com/deppfellow/go-customers/internal/handler"
	"github.com/deppfellow/go-customers/internal/middleware"
	"github.com/deppfellow/go-customers/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter returns the fully wired Echo instance.
//
// Middleware order matters: the request id must exist before the New Relic
// transaction and the request logger read it, and the context logger must be
// in place before RequestLogger and the global error handler use it.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Pre(middlewares.Global.RemoveTrailingSlash())

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.RateLimit.Limit(),
	)

	registerSystemRoutes(router, h)

	api := router.Group("/api")
	registerCustomerRoutes(api, h)

	return router
}
