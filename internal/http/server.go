// Package http provides HTTP server implementation and request handlers.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/voice-token-server/internal/config"
	apperrors "github.com/allisson/voice-token-server/internal/errors"
	"github.com/allisson/voice-token-server/internal/httputil"
	"github.com/allisson/voice-token-server/internal/metrics"
	voiceHTTP "github.com/allisson/voice-token-server/internal/voice/http"
	voiceService "github.com/allisson/voice-token-server/internal/voice/service"
)

// Server represents the API HTTP server.
type Server struct {
	server       *http.Server
	logger       *slog.Logger
	router       *gin.Engine
	ctx          context.Context
	cancel       context.CancelFunc
	shuttingDown atomic.Bool
}

// NewServer creates a new HTTP server. Call SetupRouter before Start.
func NewServer(
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	ctx, cancel := context.WithCancel(context.Background())

	return &Server{
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter configures the Gin router with middleware and the voice routes.
// webhookValidator is only used when webhook validation is enabled and metricsProvider may be nil.
func (s *Server) SetupRouter(
	cfg *config.Config,
	tokenHandler *voiceHTTP.TokenHandler,
	routingHandler *voiceHTTP.RoutingHandler,
	webhookValidator voiceService.WebhookSignatureValidator,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)
	router.GET("/ping", voiceHTTP.PingHandler)

	tokenChain := []gin.HandlerFunc{}
	if cfg.RateLimitTokenEnabled {
		tokenChain = append(tokenChain, voiceHTTP.TokenRateLimitMiddleware(
			s.ctx,
			cfg.RateLimitTokenRequestsPerSec,
			cfg.RateLimitTokenBurst,
			s.logger,
		))
	}
	tokenChain = append(tokenChain, tokenHandler.IssueTokenHandler)
	router.GET("/token", tokenChain...)

	voiceChain := []gin.HandlerFunc{}
	if cfg.VoiceWebhookValidationEnabled {
		voiceChain = append(voiceChain, voiceHTTP.WebhookSignatureMiddleware(
			webhookValidator,
			cfg.VoiceWebhookBaseURL,
			s.logger,
		))
	}
	voiceChain = append(voiceChain, routingHandler.RouteCallHandler)
	router.POST("/voice", voiceChain...)
	router.GET("/voice", voiceChain...)

	router.NoRoute(func(c *gin.Context) {
		httputil.HandleErrorGin(c, apperrors.ErrNotFound, nil)
	})

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router is not configured")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
// Readiness reports not_ready from the moment shutdown begins.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	s.shuttingDown.Store(true)
	s.cancel()
	return s.server.Shutdown(ctx)
}

// healthHandler reports that the process is alive.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server accepts traffic.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.shuttingDown.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
