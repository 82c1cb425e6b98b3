package router

import (
	"github.com/deppfellow/wheelspec/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the endpoints that are not business logic:
// health status, the docs UI and the static docs assets.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.Static("/static", "static")

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)

	// raw OpenAPI document
	r.File("/api/schema", "static/openapi.json")
}
