// Package http serves the dashboard data API consumed by the presentation
// layer. It only shapes aggregator outputs into JSON; all rendering happens
// client-side.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/monsoonviz/rainfall-dashboard/internal/domain"
	"github.com/monsoonviz/rainfall-dashboard/internal/observability"
)

// SnapshotProvider hands out the current immutable data snapshot.
type SnapshotProvider interface {
	Snapshot() *domain.Snapshot
	CheckReadiness(ctx context.Context) error
}

// Server bundles router and dependencies for the REST API.
type Server struct {
	addr            string
	shutdownTimeout time.Duration
	provider        SnapshotProvider
	logger          *slog.Logger
	metrics         *observability.Metrics
	engine          *gin.Engine
}

// NewServer constructs a server with routes and middleware.
func NewServer(addr string, shutdownTimeout time.Duration, provider SnapshotProvider, logger *slog.Logger, metrics *observability.Metrics) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
		provider:        provider,
		logger:          logger,
		metrics:         metrics,
		engine:          engine,
	}
	s.registerRoutes()
	return s
}

// Engine exposes the underlying gin engine (for tests).
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run starts the HTTP server and blocks until the context is cancelled or
// the listener fails.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.addr,
		Handler:      s.engine,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server starting", "addr", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	s.engine.GET("/readyz", s.handleReady)
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.engine.Group("/api/v1")
	{
		v1.GET("/years", s.handleYears)
		v1.GET("/regions", s.handleRegions)
		v1.GET("/boundaries", s.handleBoundaries)
		v1.GET("/map/:year", s.handleMap)
		v1.GET("/regions/:region/monthly", s.handleMonthly)
		v1.GET("/regions/:region/yearly", s.handleYearly)
		v1.GET("/regions/:region/comparison", s.handleComparison)
		v1.GET("/dashboard", s.handleDashboard)
	}
}

func (s *Server) handleReady(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.provider.CheckReadiness(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
