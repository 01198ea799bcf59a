// Package server defines the core Server struct that composes the app's
// main dependencies.
//
// It owns the lifecycle of:
//   - configuration
//   - the application logger
//   - the http.Server
//
// and provides the start/shutdown logic to run the application cleanly.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"calculator-service/internal/config"
	"github.com/rs/zerolog"
)

// Server is the application container that holds shared resources.
//
// It is not the HTTP server itself; it holds the config, the logger, and an
// internal *http.Server configured in SetupHTTPServer and started in Start.
// The calculator has no stateful dependencies (no database, no cache), so
// this container stays deliberately small.
type Server struct {
	// Config holds all environment/config values for the app.
	Config *config.Config

	// Logger is the application's main structured logger.
	Logger *zerolog.Logger

	// httpServer is the standard library HTTP server instance.
	httpServer *http.Server

	// startedAt records process start for the health endpoint's uptime.
	startedAt time.Time
}

// New constructs a Server. It does not start listening; that is done by
// SetupHTTPServer + Start.
func New(cfg *config.Config, logger *zerolog.Logger) *Server {
	return &Server{
		Config:    cfg,
		Logger:    logger,
		startedAt: time.Now(),
	}
}

// Uptime reports how long the server has been running.
func (s *Server) Uptime() time.Duration {
	return time.Since(s.startedAt)
}

// SetupHTTPServer configures the internal net/http server.
//
// The router/middleware stack is passed in as handler (Echo implements
// http.Handler). Timeouts protect against slow clients; config stores them
// as seconds.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server. It requires SetupHTTPServer to be called
// first, and blocks until the server stops or errors.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server: it stops accepting new connections
// and waits for in-flight requests until the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	return nil
}
