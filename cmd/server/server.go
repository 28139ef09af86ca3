package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// startHTTPServer serves the router until ctx is cancelled or an interrupt
// arrives, then shuts down gracefully and releases resources.
func startHTTPServer(ctx context.Context, app *application) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.config.Server.Port),
		Handler:           app.setupRouter(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		app.logger.Info("Server starting", "port", app.config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	var runErr error
	select {
	case err, ok := <-serverErr:
		if ok {
			runErr = fmt.Errorf("server failed: %w", err)
		}
	case sig := <-stop:
		app.logger.Info("Shutting down server...", "signal", sig.String())
	case <-ctx.Done():
		app.logger.Info("Shutting down server...", "reason", ctx.Err())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("Server forced to shutdown", "error", err)
		if runErr == nil {
			runErr = fmt.Errorf("server shutdown: %w", err)
		}
	}

	app.cleanup()
	app.logger.Info("Server exited properly")
	return runErr
}
