package handler

import (
	"calculator-service/internal/server"
	"calculator-service/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router setup
// passes one object around instead of many.
type Handlers struct {
	Calculator *CalculatorHandler // Calculator serves the four operation endpoints.
	Health     *HealthHandler     // Health serves the service health endpoint.
	Home       *HomeHandler       // Home serves the static homepage.
}

// NewHandlers constructs the handler container.
//
// Parameters:
//   - s: application container (logger/config) needed by handlers
//   - services: business layer container
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Calculator: NewCalculatorHandler(s, services.Calculator),
		Health:     NewHealthHandler(s),
		Home:       NewHomeHandler(s),
	}
}
