package middleware

import (
	"github.com/deppfellow/wheelspec/internal/server"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Middlewares groups all middleware components used by the HTTP server.
type Middlewares struct {
	// Global: CORS, request logging, recovery, secure headers and the error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer attaches the request-scoped logger.
	ContextEnhancer *ContextEnhancer

	// Tracing wires New Relic transactions and their custom attributes.
	Tracing *TracingMiddleware

	// RateLimit enforces the per-IP request rate.
	RateLimit *RateLimitMiddleware
}

// NewMiddlewares constructs all middleware components.
//
// Without New Relic nrApp is nil and tracing degrades to a no-op.
func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
