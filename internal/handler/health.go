package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/wheelspec/internal/middleware"
	"github.com/deppfellow/wheelspec/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler serves /status for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// HealthCheck is the result of probing one dependency.
type HealthCheck struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

// HealthResponse is the body of /status.
type HealthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]HealthCheck `json:"checks"`
}

// CheckHealth probes the configured dependencies.
//
// It returns 200 when every check passes and 503 otherwise. Redis only
// fails the check when it is configured in observability.health_checks.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	obs := h.server.Config.Observability

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := HealthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      map[string]HealthCheck{},
	}

	probes := map[string]func(ctx context.Context) error{}
	if obs != nil && obs.HealthCheckEnabled("database") && h.server.DB != nil {
		probes["database"] = h.server.DB.Pool.Ping
	}
	if obs != nil && obs.HealthCheckEnabled("redis") && h.server.Redis != nil {
		probes["redis"] = func(ctx context.Context) error { return h.server.Redis.Ping(ctx).Err() }
	}

	for name, probe := range probes {
		check := h.probe(c.Request().Context(), obs.HealthChecks.Timeout, probe)
		response.Checks[name] = check

		if check.Status != "healthy" {
			response.Status = "unhealthy"
			logger.Error().Str("check", name).Str("error", check.Error).Msg("health check failed")
			h.recordFailure(name, check)
		}
	}

	if response.Status != "healthy" {
		logger.Warn().Dur("total_duration", time.Since(start)).Msg("service unhealthy")
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().Dur("total_duration", time.Since(start)).Msg("health check passed")
	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) probe(parent context.Context, timeout time.Duration, probe func(ctx context.Context) error) HealthCheck {
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	start := time.Now()
	err := probe(ctx)

	check := HealthCheck{Status: "healthy", ResponseTime: time.Since(start).String()}
	if err != nil {
		check.Status = "unhealthy"
		check.Error = err.Error()
	}
	return check
}

func (h *HealthHandler) recordFailure(name string, check HealthCheck) {
	if h.server.LoggerService == nil || h.server.LoggerService.GetApplication() == nil {
		return
	}

	h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", map[string]interface{}{
		"check_type":    name,
		"operation":     "health_check",
		"error_type":    name + "_unhealthy",
		"response_time": check.ResponseTime,
		"error_message": check.Error,
	})
}
