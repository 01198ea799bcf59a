package handler

import (
	"calculator-service/internal/server"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// validate is the shared validator instance for request payloads.
// validator.Validate is safe for concurrent use and caches struct metadata.
var validate = validator.New()

// OperationRequest is the request body shared by all four operation
// endpoints.
//
// Both fields are required JSON numbers. They are pointers so that zero is
// a legal operand: `{"a": 10, "b": 0}` must reach the divide operation (and
// fail there, with the domain error), whereas `{"a": 10}` must be rejected
// by validation before any arithmetic runs.
type OperationRequest struct {
	A *float64 `json:"a" validate:"required"`
	B *float64 `json:"b" validate:"required"`
}

// Validate implements validation.Validatable.
func (r *OperationRequest) Validate() error {
	return validate.Struct(r)
}

// OperationResult is the success response body: a single numeric field.
type OperationResult struct {
	Result float64 `json:"result"`
}

// Calculator is the service dependency of the calculator endpoints.
//
// It is an interface so tests can substitute an implementation whose
// operations fail unexpectedly and exercise the generic 500 path; the
// production implementation is *service.CalculatorService.
type Calculator interface {
	Add(a, b float64) (float64, error)
	Subtract(a, b float64) (float64, error)
	Multiply(a, b float64) (float64, error)
	Divide(a, b float64) (float64, error)
}

// CalculatorHandler exposes the four arithmetic operation endpoints.
//
// It is constructed once at startup and holds no mutable per-request state;
// every request allocates its own payload and result.
type CalculatorHandler struct {
	Handler
	calculator Calculator
}

// NewCalculatorHandler constructs a CalculatorHandler.
func NewCalculatorHandler(s *server.Server, calculator Calculator) *CalculatorHandler {
	return &CalculatorHandler{
		Handler:    NewHandler(s),
		calculator: calculator,
	}
}

// Add handles POST /add.
func (h *CalculatorHandler) Add(c echo.Context, req *OperationRequest) (*OperationResult, error) {
	result, err := h.calculator.Add(*req.A, *req.B)
	if err != nil {
		return nil, err
	}
	return &OperationResult{Result: result}, nil
}

// Subtract handles POST /subtract.
func (h *CalculatorHandler) Subtract(c echo.Context, req *OperationRequest) (*OperationResult, error) {
	result, err := h.calculator.Subtract(*req.A, *req.B)
	if err != nil {
		return nil, err
	}
	return &OperationResult{Result: result}, nil
}

// Multiply handles POST /multiply.
func (h *CalculatorHandler) Multiply(c echo.Context, req *OperationRequest) (*OperationResult, error) {
	result, err := h.calculator.Multiply(*req.A, *req.B)
	if err != nil {
		return nil, err
	}
	return &OperationResult{Result: result}, nil
}

// Divide handles POST /divide.
//
// The error from a zero divisor is returned as-is; the global error handler
// recognizes the domain-error type and maps it to a 400 with its message,
// while any other failure becomes a generic 500.
func (h *CalculatorHandler) Divide(c echo.Context, req *OperationRequest) (*OperationResult, error) {
	result, err := h.calculator.Divide(*req.A, *req.B)
	if err != nil {
		return nil, err
	}
	return &OperationResult{Result: result}, nil
}
