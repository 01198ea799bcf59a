package router

import (
	"calculator-service/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the
// calculator's business logic:
//  1. the static homepage
//  2. the health endpoint (used by uptime monitors / load balancers)
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", h.Home.ServeHome)
	r.GET("/status", h.Health.CheckHealth)
}
