package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"calculator-service/internal/calc"
	"calculator-service/internal/config"
	"calculator-service/internal/handler"
	"calculator-service/internal/middleware"
	"calculator-service/internal/router"
	"calculator-service/internal/server"
	"calculator-service/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCalculator lets tests replace individual operations, e.g. with one
// that fails unexpectedly, to exercise the generic 500 path.
type stubCalculator struct {
	add      func(a, b float64) (float64, error)
	subtract func(a, b float64) (float64, error)
	multiply func(a, b float64) (float64, error)
	divide   func(a, b float64) (float64, error)
}

func (s *stubCalculator) Add(a, b float64) (float64, error)      { return s.add(a, b) }
func (s *stubCalculator) Subtract(a, b float64) (float64, error) { return s.subtract(a, b) }
func (s *stubCalculator) Multiply(a, b float64) (float64, error) { return s.multiply(a, b) }
func (s *stubCalculator) Divide(a, b float64) (float64, error)   { return s.divide(a, b) }

func newTestConfig() *config.Config {
	return &config.Config{
		Primary: config.Primary{Env: "development"},
		Server: config.ServerConfig{
			Port:               "8080",
			ReadTimeout:        10,
			WriteTimeout:       10,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
		},
		Observability: config.DefaultObservabilityConfig(),
	}
}

// newTestRouter builds the full middleware + router stack around the given
// calculator implementation, so requests flow through binding, validation,
// and the global error handler exactly as in production.
func newTestRouter(calculator handler.Calculator) *echo.Echo {
	logger := zerolog.Nop()
	srv := server.New(newTestConfig(), &logger)

	h := &handler.Handlers{
		Calculator: handler.NewCalculatorHandler(srv, calculator),
		Health:     handler.NewHealthHandler(srv),
		Home:       handler.NewHomeHandler(srv),
	}

	return router.New(h, middleware.NewMiddlewares(srv))
}

// newProductionRouter wires the real calculator service.
func newProductionRouter(t *testing.T) *echo.Echo {
	t.Helper()

	logger := zerolog.Nop()
	srv := server.New(newTestConfig(), &logger)

	services, err := service.NewServices(srv)
	require.NoError(t, err)

	return router.New(handler.NewHandlers(srv, services), middleware.NewMiddlewares(srv))
}

func postJSON(r *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestOperationEndpointsSuccess(t *testing.T) {
	r := newProductionRouter(t)

	tests := []struct {
		path string
		body string
		want float64
	}{
		{"/add", `{"a": 10, "b": 5}`, 15},
		{"/subtract", `{"a": 10, "b": 5}`, 5},
		{"/multiply", `{"a": 10, "b": 5}`, 50},
		{"/divide", `{"a": 10, "b": 2}`, 5},
		{"/add", `{"a": 2.5, "b": 3}`, 5.5},
		{"/divide", `{"a": 7, "b": 2}`, 3.5},
		{"/multiply", `{"a": -3, "b": 7}`, -21},
	}

	for _, tt := range tests {
		t.Run(tt.path+" "+tt.body, func(t *testing.T) {
			rec := postJSON(r, tt.path, tt.body)

			require.Equal(t, http.StatusOK, rec.Code)

			body := decodeBody(t, rec)
			assert.Equal(t, tt.want, body["result"])

			// The success body carries exactly one field.
			assert.Len(t, body, 1)
		})
	}
}

func TestDivideByZero(t *testing.T) {
	r := newProductionRouter(t)

	for _, body := range []string{
		`{"a": 10, "b": 0}`,
		`{"a": -10, "b": 0}`,
		`{"a": 0, "b": 0}`,
		`{"a": 2.5, "b": 0}`,
	} {
		rec := postJSON(r, "/divide", body)

		require.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)

		resp := decodeBody(t, rec)
		assert.Equal(t, "Cannot divide by zero!", resp["error"])
		assert.Len(t, resp, 1)
	}
}

func TestValidationMissingField(t *testing.T) {
	r := newProductionRouter(t)

	tests := []struct {
		path string
		body string
	}{
		{"/add", `{"a": 10}`},
		{"/subtract", `{"b": 5}`},
		{"/multiply", `{}`},
		{"/divide", `{"a": 10}`},
	}

	for _, tt := range tests {
		t.Run(tt.path+" "+tt.body, func(t *testing.T) {
			rec := postJSON(r, tt.path, tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)

			body := decodeBody(t, rec)
			errMsg, ok := body["error"].(string)
			require.True(t, ok)
			assert.NotEmpty(t, errMsg)
			assert.Len(t, body, 1)
		})
	}
}

func TestValidationWrongType(t *testing.T) {
	r := newProductionRouter(t)

	rec := postJSON(r, "/multiply", `{"a": "invalid", "b": 5}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	errMsg, ok := body["error"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, errMsg)
}

func TestValidationMalformedJSON(t *testing.T) {
	r := newProductionRouter(t)

	rec := postJSON(r, "/add", `{"a": 10, "b":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.NotEmpty(t, body["error"])
}

// TestZeroOperandIsValid pins the reason the request fields are pointers:
// a present zero must pass validation and reach the arithmetic.
func TestZeroOperandIsValid(t *testing.T) {
	r := newProductionRouter(t)

	rec := postJSON(r, "/add", `{"a": 7, "b": 0}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(7), decodeBody(t, rec)["result"])
}

func TestUnexpectedFailureBecomesInternalError(t *testing.T) {
	ok := func(a, b float64) (float64, error) { return a + b, nil }
	boom := func(a, b float64) (float64, error) { return 0, errors.New("operation backend exploded") }

	tests := []struct {
		path string
		stub *stubCalculator
	}{
		{"/divide", &stubCalculator{add: ok, subtract: ok, multiply: ok, divide: boom}},
		{"/add", &stubCalculator{add: boom, subtract: ok, multiply: ok, divide: ok}},
		{"/subtract", &stubCalculator{add: ok, subtract: boom, multiply: ok, divide: ok}},
		{"/multiply", &stubCalculator{add: ok, subtract: ok, multiply: boom, divide: ok}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			r := newTestRouter(tt.stub)

			rec := postJSON(r, tt.path, `{"a": 10, "b": 2}`)

			require.Equal(t, http.StatusInternalServerError, rec.Code)

			body := decodeBody(t, rec)
			// The generic message leaks nothing about the real failure.
			assert.Equal(t, "Internal Server Error", body["error"])
			assert.Len(t, body, 1)
		})
	}
}

// TestWrappedDomainErrorStaysClientError pins the classification
// discriminator: a failure that wraps the domain-error type is surfaced as
// a 400 with its message, not as a 500.
func TestWrappedDomainErrorStaysClientError(t *testing.T) {
	ok := func(a, b float64) (float64, error) { return a + b, nil }
	stub := &stubCalculator{
		add: ok, subtract: ok, multiply: ok,
		divide: func(a, b float64) (float64, error) {
			return 0, fmt.Errorf("compute: %w", calc.ErrDivideByZero)
		},
	}
	r := newTestRouter(stub)

	rec := postJSON(r, "/divide", `{"a": 10, "b": 2}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Cannot divide by zero!", decodeBody(t, rec)["error"])
}

func TestPanickingOperationBecomesInternalError(t *testing.T) {
	ok := func(a, b float64) (float64, error) { return a + b, nil }
	stub := &stubCalculator{
		add: ok, subtract: ok, divide: ok,
		multiply: func(a, b float64) (float64, error) { panic("multiply table corrupted") },
	}
	r := newTestRouter(stub)

	rec := postJSON(r, "/multiply", `{"a": 10, "b": 5}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", decodeBody(t, rec)["error"])
}

func TestHomepage(t *testing.T) {
	r := newProductionRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	assert.NotEmpty(t, rec.Body.String())
}

func TestHealthEndpoint(t *testing.T) {
	r := newProductionRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "development", body["environment"])
}

func TestUnknownRoute(t *testing.T) {
	r := newProductionRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decodeBody(t, rec)["error"])
}

func TestRequestIDHeader(t *testing.T) {
	r := newProductionRouter(t)

	rec := postJSON(r, "/add", `{"a": 1, "b": 2}`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	// An inbound ID is echoed back unchanged.
	req := httptest.NewRequest(http.MethodPost, "/add", strings.NewReader(`{"a": 1, "b": 2}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("X-Request-ID", "test-correlation-id")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "test-correlation-id", rec.Header().Get("X-Request-ID"))
}
