package gatewayservice

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/Sabirdaar/multi-lang-e-commerce/internal/config"
	"github.com/Sabirdaar/multi-lang-e-commerce/internal/gateway"
	"github.com/Sabirdaar/multi-lang-e-commerce/internal/platform/logger"
)

// Run starts the API gateway HTTP server and blocks until shutdown or error.
func Run() error {
	log := logger.New("api-gateway")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	log = logger.NewWithLevel("api-gateway", cfg.LogLevel)

	log.Info().
		Int("port", cfg.Port).
		Str("environment", string(cfg.Environment)).
		Msg("API gateway starting")

	// Create cancellable root context bound to SIGINT/SIGTERM
	ctx, stop := newServerContext()
	defer stop()

	// Route table is static: built once, read-only afterwards.
	table, err := gateway.NewTable(gateway.DefaultRules(cfg))
	if err != nil {
		log.Error().Err(err).Msg("Invalid route table")
		return err
	}
	log.Info().Strs("endpoints", table.Prefixes()).Msg("Route table registered")

	handler := gateway.NewHandler(table, cfg, log)

	server := newHTTPServer(ctx, cfg, handler)
	errCh := serveHTTP(server, log, cfg)

	// Graceful shutdown on context cancel or server error
	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Err(err).Msg("HTTP server failed")
		return err
	}
}

func newHTTPServer(ctx context.Context, cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}

func serveHTTP(server *http.Server, log zerolog.Logger, cfg *config.Config) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.Port).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	return errCh
}

// newServerContext returns a cancellable context that is cancelled on SIGINT/SIGTERM.
func newServerContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
