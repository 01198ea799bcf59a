package handler

import (
	"net/http"
	"time"

	"calculator-service/internal/middleware"
	"calculator-service/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler exposes a "system" endpoint that external systems can use
// to verify the service is alive.
//
// The calculator has no backing dependencies (no database, no cache), so the
// check always reports healthy; it still exists so load balancers and uptime
// monitors have a stable probe target.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler with access to shared app
// dependencies.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth returns the service health status.
//
// Response includes overall status, timestamp (UTC), environment and uptime.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"uptime":      h.server.Uptime().String(),
	}

	logger.Debug().Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}
