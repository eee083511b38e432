package router

import (
	"github.com/deppfellow/go-customers/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the endpoints outside the customer API:
// home and about pages, health status and API docs.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", h.Info.Home)
	r.GET("/about", h.Info.About)

	r.GET("/status", h.Health.CheckHealth)

	r.Static("/static", handler.StaticDir)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
