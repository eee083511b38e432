package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/go-customers/internal/middleware"
	"github.com/deppfellow/go-customers/internal/server"
	"github.com/deppfellow/go-customers/internal/service"
	"github.com/labstack/echo/v4"
)

// HealthHandler exposes the /status endpoint used by uptime monitors and
// load balancers.
type HealthHandler struct {
	Handler
	customers *service.CustomerService
}

func NewHealthHandler(s *server.Server, customers *service.CustomerService) *HealthHandler {
	return &HealthHandler{
		Handler:   NewHandler(s),
		customers: customers,
	}
}

// CheckHealth returns the service status with a check of the customer store.
//
//	{ "status": "healthy", "timestamp": "...", "environment": "development",
//	  "checks": { "store": { "status": "healthy", "customers": 3, "response_time": "1µs" } } }
//
// It returns 503 when a check fails.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := map[string]interface{}{}
	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	isHealthy := true

	storeStart := time.Now()
	if h.customers == nil {
		isHealthy = false
		checks["store"] = map[string]interface{}{
			"status": "unhealthy",
			"error":  "customer store not initialized",
		}
		h.recordHealthCheckError("store", "store_unavailable")
	} else {
		checks["store"] = map[string]interface{}{
			"status":        "healthy",
			"customers":     h.customers.Count(),
			"response_time": time.Since(storeStart).String(),
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		h.recordHealthCheckError("response", "json_response_error")
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

func (h *HealthHandler) recordHealthCheckError(checkType, errorType string) {
	if app := h.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HealthCheckError", map[string]interface{}{
			"check_type": checkType,
			"operation":  "health_check",
			"error_type": errorType,
		})
	}
}
