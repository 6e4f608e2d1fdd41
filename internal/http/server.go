// Package http provides the HTTP server, router setup, and shared middleware.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/checkin/internal/config"
	tokenHTTP "github.com/allisson/checkin/internal/token/http"
)

// Server represents the main API HTTP server.
type Server struct {
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
	cfg    *config.Config

	tokenHandler           *tokenHTTP.TokenHandler
	securityMetricsHandler *tokenHTTP.SecurityMetricsHandler
	checkinHandler         *tokenHTTP.CheckinHandler
}

// NewServer creates a new HTTP server with all route handlers.
func NewServer(
	cfg *config.Config,
	logger *slog.Logger,
	tokenHandler *tokenHTTP.TokenHandler,
	securityMetricsHandler *tokenHTTP.SecurityMetricsHandler,
	checkinHandler *tokenHTTP.CheckinHandler,
) *Server {
	return &Server{
		logger: logger,
		cfg:    cfg,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		tokenHandler:           tokenHandler,
		securityMetricsHandler: securityMetricsHandler,
		checkinHandler:         checkinHandler,
	}
}

// SetupRouter builds the Gin engine with middleware and all API routes.
func (s *Server) SetupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(s.cfg.CORSEnabled, s.cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	{
		tokens := v1.Group("/tokens")
		{
			// Issuance is the only endpoint worth abusing; rate limit it alone.
			if s.cfg.RateLimitEnabled {
				tokens.POST("", RateLimitMiddleware(
					s.cfg.RateLimitRequestsPerSec,
					s.cfg.RateLimitBurst,
					s.logger,
				), s.tokenHandler.GenerateHandler)
			} else {
				tokens.POST("", s.tokenHandler.GenerateHandler)
			}
			tokens.POST("/validate", s.tokenHandler.ValidateHandler)
			tokens.POST("/sanitize", s.tokenHandler.SanitizeHandler)
			tokens.POST("/hash", s.tokenHandler.HashHandler)
		}

		security := v1.Group("/security")
		{
			security.GET("/metrics", s.securityMetricsHandler.GetHandler)
			security.POST("/metrics/reset", s.securityMetricsHandler.ResetHandler)
		}

		checkins := v1.Group("/checkins")
		{
			checkins.POST("/verify", s.checkinHandler.VerifyHandler)
		}
	}

	s.router = router
	return router
}

// healthHandler reports liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports readiness. The server is ready once its handlers
// are wired; the session-validity service is consulted lazily per request and
// its availability is not a readiness gate.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.tokenHandler == nil || s.checkinHandler == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not_ready",
			"components": gin.H{
				"handlers": "error",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"components": gin.H{
			"handlers": "ok",
		},
	})
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		s.SetupRouter()
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
