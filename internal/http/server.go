// Package http wires the gin router and the API and metrics servers.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/leadlink/internal/config"
	leadHTTP "github.com/allisson/leadlink/internal/lead/http"
	"github.com/allisson/leadlink/internal/metrics"
	realtorHTTP "github.com/allisson/leadlink/internal/realtor/http"
	sharelinkHTTP "github.com/allisson/leadlink/internal/sharelink/http"
)

// Server serves the leadlink API.
type Server struct {
	db     *sql.DB
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
}

// NewServer creates a Server. SetupRouter must run before Start.
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: newHTTPServer(host, port),
	}
}

// Handlers groups the domain handlers mounted on the router.
type Handlers struct {
	Realtor   *realtorHTTP.RealtorHandler
	ShareLink *sharelinkHTTP.ShareLinkHandler
	Lead      *leadHTTP.LeadHandler
}

// SetupRouter builds the gin engine with every API route.
// ctx bounds the lifetime of background middleware goroutines.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	handlers Handlers,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, cfg.ShareLinkBaseURL, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")

	realtors := v1.Group("/realtors")
	{
		realtors.POST("", handlers.Realtor.CreateHandler)
		realtors.GET("/:id", handlers.Realtor.GetHandler)
		realtors.PUT("/:id/customization", handlers.Realtor.UpdateCustomizationHandler)
		realtors.GET("/:id/share-link", handlers.ShareLink.GetHandler)
		realtors.POST("/:id/share-link/regenerate", handlers.ShareLink.RegenerateHandler)
		realtors.GET("/:id/share-link/kit", handlers.ShareLink.KitHandler)
		realtors.GET("/:id/leads", handlers.Lead.ListHandler)
	}

	public := v1.Group("/public")
	if cfg.RateLimitPublicEnabled {
		public.Use(PublicRateLimitMiddleware(
			ctx,
			cfg.RateLimitPublicRequestsPerSec,
			cfg.RateLimitPublicBurst,
			s.logger,
		))
	}
	{
		public.GET("/forms", handlers.ShareLink.ResolveHandler)
		public.POST("/leads", handlers.Lead.SubmitHandler)
	}

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not configured")
	}
	s.server.Handler = s.router
	return listenAndServe(s.server, "http server", s.logger)
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports ready only when the database answers a ping.
func (s *Server) readinessHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if s.db == nil || s.db.PingContext(ctx) != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": "ok"},
	})
}
