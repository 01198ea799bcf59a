// Command server runs the calculator HTTP service.
//
// Startup order: config -> logger -> server container -> services ->
// handlers -> middleware -> router -> listen. On SIGINT/SIGTERM the server
// drains in-flight requests before exiting.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"calculator-service/internal/config"
	"calculator-service/internal/handler"
	"calculator-service/internal/logger"
	"calculator-service/internal/middleware"
	"calculator-service/internal/router"
	"calculator-service/internal/server"
	"calculator-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Load logs fatally on malformed config; this path covers future
		// error returns.
		os.Exit(1)
	}

	log := logger.New(cfg.Observability)

	srv := server.New(cfg, log)

	services, err := service.NewServices(srv)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize services")
	}

	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	r := router.New(handlers, middlewares)
	srv.SetupHTTPServer(r)

	// Run the listener in the background so the main goroutine can wait on
	// shutdown signals.
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatal().Err(err).Msg("server failed")
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
