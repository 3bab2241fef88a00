package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/allisson/voice-token-server/internal/app"
	"github.com/allisson/voice-token-server/internal/config"
)

// runnable is a server that blocks in Start until Shutdown is called.
type runnable interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// namedServer pairs a runnable with the name used in errors.
type namedServer struct {
	name   string
	server runnable
}

// RunServer starts the API server, and the metrics server when enabled, and blocks
// until SIGINT/SIGTERM or a server failure. Both servers are then stopped within
// ServerShutdownTimeout.
func RunServer(ctx context.Context, version string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	gin.SetMode(cfg.GetGinMode())

	container := app.NewContainer(cfg)
	logger := container.Logger()
	defer closeContainer(container, logger)

	logger.Info("starting server",
		slog.String("version", version),
		slog.Bool("webhook_validation", cfg.VoiceWebhookValidationEnabled),
		slog.Bool("metrics", cfg.MetricsEnabled),
	)

	// Resolving the API server initializes every voice component.
	apiServer, err := container.HTTPServer()
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}
	servers := []namedServer{{name: "api server", server: apiServer}}

	metricsServer, err := container.MetricsServer()
	if err != nil {
		return fmt.Errorf("failed to initialize metrics server: %w", err)
	}
	if metricsServer != nil {
		servers = append(servers, namedServer{name: "metrics server", server: metricsServer})
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return serveUntilDone(ctx, logger, cfg.ServerShutdownTimeout, servers...)
}

// serveUntilDone starts every server and waits for ctx to end or any server to fail,
// then shuts all of them down. Start and shutdown errors are joined.
func serveUntilDone(
	ctx context.Context,
	logger *slog.Logger,
	shutdownTimeout time.Duration,
	servers ...namedServer,
) error {
	serverErr := make(chan error, len(servers))
	for _, s := range servers {
		go func() {
			if err := s.server.Start(ctx); err != nil {
				serverErr <- fmt.Errorf("%s error: %w", s.name, err)
			}
		}()
	}

	var errs []error

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErr:
		logger.Error("server error, initiating shutdown", slog.Any("error", err))
		errs = append(errs, err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("%s shutdown: %w", s.name, err))
		}
	}

	return errors.Join(errs...)
}
