package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Start runs the dispatcher worker and the HTTP server, then blocks until an
// interrupt or terminate signal triggers a graceful shutdown.
func (s *Server) Start() error {
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	if err := s.Dispatcher.Start(workerCtx, s.Bridge); err != nil {
		return err
	}

	go func() {
		if err := s.E.Start(s.Cfg.Addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server stopped unexpectedly", "error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server with a timeout.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.E.Shutdown(ctx); err != nil {
		slog.Error("Failed to shut down HTTP server", "error", err)
	}

	// Stop the worker and close the queue after the HTTP surface is down,
	// so no new jobs are enqueued while the bridge drains.
	stopWorker()
	if err := s.Bridge.Close(); err != nil {
		slog.Error("Failed to close pub/sub bridge", "error", err)
	}
	s.Pool.Close()
	return nil
}
