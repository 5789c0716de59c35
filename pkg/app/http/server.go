package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/democracychain/democracy-chain/pkg/config"
)

const defaultShutdownTimeout = 30 * time.Second

// ShutdownHook runs after the HTTP server has drained, with the remaining
// shutdown budget in ctx.
type ShutdownHook func(ctx context.Context)

// ServeAndWait binds the configured address, serves handler until ctx is
// canceled or the server fails, then shuts down gracefully and runs hooks in
// order. Bind errors are returned before anything is served; hooks run
// exactly once either way.
func ServeAndWait(ctx context.Context, handler http.Handler, logger *zap.Logger, cfg *config.ServerConfig, hooks ...ShutdownHook) error {
	if handler == nil {
		return fmt.Errorf("nil handler")
	}
	if cfg == nil {
		return fmt.Errorf("nil server config")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	ln, err := net.Listen("tcp", net.JoinHostPort(cfg.Host, fmt.Sprint(cfg.Port)))
	if err != nil {
		for _, hook := range hooks {
			hook(context.Background())
		}
		return fmt.Errorf("listen: %w", err)
	}
	return serve(ctx, ln, handler, logger, cfg, hooks)
}

func serve(ctx context.Context, ln net.Listener, handler http.Handler, logger *zap.Logger, cfg *config.ServerConfig, hooks []ShutdownHook) error {
	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	srv := &http.Server{
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", zap.String("address", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case runErr = <-errCh:
		if runErr != nil {
			logger.Error("HTTP server error", zap.Error(runErr))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	logger.Info("Shutting down HTTP server", zap.Duration("timeout", timeout))
	shutdownErr := srv.Shutdown(shutdownCtx)
	for _, hook := range hooks {
		hook(shutdownCtx)
	}

	if shutdownErr != nil {
		logger.Error("HTTP server shutdown error", zap.Error(shutdownErr))
		return fmt.Errorf("http shutdown: %w", shutdownErr)
	}
	if runErr != nil {
		return fmt.Errorf("http server failed: %w", runErr)
	}
	logger.Info("HTTP server stopped")
	return nil
}
