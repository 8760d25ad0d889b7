// Package reportserver hosts a live view of the test report, rebuilt from
// the results source on every request.
package reportserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"cukereport/internal/report"
)

// Source produces the current report model.
type Source func() (report.Model, error)

// Config captures the settings for serving a live report.
type Config struct {
	Addr   string
	Title  string
	Source Source
	// Now defaults to time.Now.
	Now func() time.Time
}

// Serve starts an HTTP server that hosts the report pages and API endpoints.
func Serve(ctx context.Context, cfg Config) error {
	if ctx == nil {
		return errors.New("reportserver: context is nil")
	}
	if cfg.Addr == "" {
		return errors.New("reportserver: addr is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()
	slog.Debug("report server listening", "addr", cfg.Addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		err := <-errCh
		if errors.Is(err, http.ErrServerClosed) || err == nil {
			return nil
		}
		return err
	}
}
