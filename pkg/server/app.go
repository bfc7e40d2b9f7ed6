package server

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	xhttp "StockLens/pkg/http"
	applogger "StockLens/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	logger     *applogger.Logger
	httpServer *xhttp.Server
	closers    map[string]io.Closer
}

// New creates a new App. closers are released in shutdown after the HTTP
// server has stopped; nil entries are skipped.
func New(logger *applogger.Logger, httpServer *xhttp.Server, closers map[string]io.Closer) *App {
	return &App{
		logger:     logger,
		httpServer: httpServer,
		closers:    closers,
	}
}

// Run starts the HTTP server and blocks until SIGINT or SIGTERM.
func (a *App) Run() error {
	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	sig := <-sigCh

	a.logger.Info("shutdown signal received", applogger.String("signal", sig.String()))
	return a.Shutdown(context.Background())
}

// Shutdown stops the HTTP server then closes infrastructure clients.
func (a *App) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, a.httpServer.ShutdownTimeout())
	defer cancel()

	var firstErr error
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
		firstErr = err
	}

	for name, c := range a.closers {
		if c == nil {
			continue
		}
		if err := c.Close(); err != nil {
			a.logger.Warn("close error", applogger.String("component", name), applogger.Error(err))
		}
	}

	a.logger.Info("shutdown complete")
	return firstErr
}
