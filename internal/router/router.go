// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/deppfellow/wheelspec/internal/handler"
	"github.com/deppfellow/wheelspec/internal/middleware"
	"github.com/deppfellow/wheelspec/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the echo instance with the global middleware chain and
// every route.
//
// Order matters: the request id must exist before tracing and the context
// enhancer read it, and the request logger must run inside the enhancer.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	m := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = m.Global.GlobalErrorHandler

	router.Use(
		m.RateLimit.Limit(),
		m.Global.CORS(),
		m.Global.Secure(),
		middleware.RequestID(),
		m.Tracing.NewRelicMiddleware(),
		m.Tracing.EnhanceTracing(),
		m.ContextEnhancer.EnhanceContext(),
		m.Global.RequestLogger(),
		m.Global.Recover(),
	)

	registerSystemRoutes(router, h)

	api := router.Group("/api")
	registerFormRoutes(api, h)

	return router
}
