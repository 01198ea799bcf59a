package handler

import (
	"time"

	"calculator-service/internal/middleware"
	"calculator-service/internal/server"
	"calculator-service/internal/validation"
	"github.com/labstack/echo/v4"
)

// Handler is the base handler type that holds shared application
// dependencies.
//
// It is embedded by concrete handlers (CalculatorHandler, HealthHandler,
// HomeHandler) so they can access shared resources via *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
//
// It returns the struct by value; the struct only contains a pointer field,
// so copying is cheap and still points to the same Server.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// --- Generic typed handler plumbing -----------------------------------------

// HandlerFunc represents a typed endpoint function that receives a validated
// request payload (Req) and returns a response (Res) or an error.
//
// Req must satisfy validation.Validatable and is in practice a pointer type
// (e.g. *OperationRequest), because Echo's Bind requires a pointer to
// populate fields.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// ResponseHandler defines how a successful handler result is written to the
// HTTP response.
type ResponseHandler interface {
	// Handle writes the HTTP response for the given result.
	Handle(c echo.Context, result interface{}) error

	// GetOperation returns an operation name used for structured logging.
	GetOperation() string
}

// JSONResponseHandler writes JSON responses with a given status code.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

// handleRequest is the shared execution pipeline for all typed handlers.
//
// It eliminates endpoint boilerplate by centralizing:
//   - request binding + validation
//   - structured logging (with request context)
//   - timing (validation duration, handler duration, total duration)
//   - response writing
//
// The per-request state machine is linear: Parse -> Validate -> Compute ->
// respond (or return the error for the global handler to classify). There
// are no retries; validation failures short-circuit before the handler
// function is invoked.
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (interface{}, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	method := c.Request().Method
	path := c.Path()

	// Context-enhanced logger set by the ContextEnhancer middleware;
	// already includes request_id and correlation fields.
	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("method", method).
		Str("path", path).
		Logger()

	logger.Debug().Msg("handling request")

	// ---------------- Validation phase ---------------------------------------
	validationStart := time.Now()

	// BindAndValidate populates req from the body and runs its validation
	// rules. Any failure is already a client-shaped 400 error.
	if err := validation.BindAndValidate(c, req); err != nil {
		logger.Warn().
			Err(err).
			Dur("validation_duration", time.Since(validationStart)).
			Msg("request validation failed")

		// Let the global error handler format the response.
		return err
	}

	validationDuration := time.Since(validationStart)

	// ---------------- Handler execution phase --------------------------------
	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", time.Since(start)).
			Msg("handler execution failed")

		return err
	}

	logger.Info().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", time.Since(start)).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// Handle wraps a typed handler with validation, error propagation, logging,
// and JSON response writing, returning an echo.HandlerFunc that can be
// registered directly on routes.
//
// newReq must produce a fresh payload for every call: the request struct is
// mutated by binding, so sharing one instance across concurrent requests
// would race.
//
// Usage pattern:
//
//	r.POST("/add", handler.Handle(h, h.Add, http.StatusOK, func() *OperationRequest {
//		return &OperationRequest{}
//	}))
func Handle[Req validation.Validatable, Res any](
	h Handler,
	handler HandlerFunc[Req, Res],
	status int,
	newReq func() Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		// Adapt the typed handler (Res) into the generic interface{} pipeline.
		return handleRequest(c, newReq(), func(c echo.Context, req Req) (interface{}, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}
