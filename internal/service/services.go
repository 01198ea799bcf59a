package service

import (
	"calculator-service/internal/server"
)

// Services is a container that groups all business-logic services.
type Services struct {
	Calculator *CalculatorService
}

// NewServices constructs the service container from the application
// container.
func NewServices(s *server.Server) (*Services, error) {
	return &Services{
		Calculator: NewCalculatorService(s),
	}, nil
}
