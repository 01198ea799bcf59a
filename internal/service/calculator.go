package service

import (
	"calculator-service/internal/calc"
	"calculator-service/internal/server"
	"github.com/rs/zerolog"
)

// CalculatorService exposes the four arithmetic operations to the handler
// layer.
//
// It holds no mutable per-request state: the only field is the application
// logger, so a single instance is shared safely across all requests.
// Every method has the same (float64, float64) -> (float64, error)
// signature even though only Divide can actually fail; the uniform shape
// keeps the handler pipeline identical across endpoints and lets the error
// classifier treat any operation failure the same way.
type CalculatorService struct {
	logger *zerolog.Logger
}

// NewCalculatorService constructs a CalculatorService.
func NewCalculatorService(s *server.Server) *CalculatorService {
	return &CalculatorService{
		logger: s.Logger,
	}
}

// Add returns the sum of a and b. It never fails.
func (s *CalculatorService) Add(a, b float64) (float64, error) {
	result := calc.Add(a, b)
	s.logger.Debug().Float64("a", a).Float64("b", b).Float64("result", result).Msg("add")
	return result, nil
}

// Subtract returns the difference when b is subtracted from a. It never fails.
func (s *CalculatorService) Subtract(a, b float64) (float64, error) {
	result := calc.Subtract(a, b)
	s.logger.Debug().Float64("a", a).Float64("b", b).Float64("result", result).Msg("subtract")
	return result, nil
}

// Multiply returns the product of a and b. It never fails.
func (s *CalculatorService) Multiply(a, b float64) (float64, error) {
	result := calc.Multiply(a, b)
	s.logger.Debug().Float64("a", a).Float64("b", b).Float64("result", result).Msg("multiply")
	return result, nil
}

// Divide returns the quotient of a divided by b, or calc.ErrDivideByZero
// when b is zero. The error is returned unwrapped so the global error
// handler can discriminate on its concrete type.
func (s *CalculatorService) Divide(a, b float64) (float64, error) {
	result, err := calc.Divide(a, b)
	if err != nil {
		s.logger.Warn().Float64("a", a).Float64("b", b).Msg("division by zero attempted")
		return 0, err
	}

	s.logger.Debug().Float64("a", a).Float64("b", b).Float64("result", result).Msg("divide")
	return result, nil
}
