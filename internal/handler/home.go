package handler

import (
	_ "embed"
	"net/http"

	"calculator-service/internal/server"
	"github.com/labstack/echo/v4"
)

// homePage is the static homepage document. It is embedded at build time so
// the binary serves it without depending on the working directory.
//
//go:embed index.html
var homePage string

// HomeHandler serves the static homepage.
//
// The page has no business logic; it is a plain HTML document with a small
// form that posts to the operation endpoints.
type HomeHandler struct {
	Handler
}

// NewHomeHandler constructs a HomeHandler with access to shared dependencies.
func NewHomeHandler(s *server.Server) *HomeHandler {
	return &HomeHandler{
		Handler: NewHandler(s),
	}
}

// ServeHome handles GET / and responds with the homepage as text/html.
func (h *HomeHandler) ServeHome(c echo.Context) error {
	return c.HTML(http.StatusOK, homePage)
}
