// Package router initializes the HTTP router (using Echo).
//
// It registers the middleware stack, wires the global error handler, and
// defines the route table mapping paths to their handlers. The router is
// the explicit dispatcher object of the service: built once at startup and
// holding no mutable per-request state.
package router

import (
	"net/http"

	"calculator-service/internal/handler"
	"calculator-service/internal/middleware"
	"github.com/labstack/echo/v4"
)

// New builds the Echo instance with the full middleware stack and route
// table.
//
// Middleware order matters: RequestID must run before the ContextEnhancer
// (which puts the ID on the request logger), and the RequestLogger reads
// the enhanced logger from context.
func New(h *handler.Handlers, mw *middleware.Middlewares) *echo.Echo {
	r := echo.New()

	r.HideBanner = true
	r.HidePort = true

	// All errors, from handlers and middleware alike, funnel through the
	// global error handler for classification.
	r.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	r.Use(middleware.RequestID())
	r.Use(mw.ContextEnhancer.EnhanceContext())
	r.Use(mw.Global.RequestLogger())
	r.Use(mw.Global.CORS())
	r.Use(mw.Global.Secure())
	r.Use(mw.Global.Recover())

	registerSystemRoutes(r, h)
	registerCalculatorRoutes(r, h)

	return r
}

// registerCalculatorRoutes maps the four operation endpoints onto the
// calculator handler through the typed handler pipeline.
//
// Each route gets a factory producing a fresh payload per request; the
// bound struct must never be shared between concurrent requests.
func registerCalculatorRoutes(r *echo.Echo, h *handler.Handlers) {
	newReq := func() *handler.OperationRequest {
		return &handler.OperationRequest{}
	}

	base := h.Calculator.Handler

	r.POST("/add", handler.Handle(base, h.Calculator.Add, http.StatusOK, newReq))
	r.POST("/subtract", handler.Handle(base, h.Calculator.Subtract, http.StatusOK, newReq))
	r.POST("/multiply", handler.Handle(base, h.Calculator.Multiply, http.StatusOK, newReq))
	r.POST("/divide", handler.Handle(base, h.Calculator.Divide, http.StatusOK, newReq))
}
