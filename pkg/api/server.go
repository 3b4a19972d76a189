// Package api provides the HTTP control surface for the analysis engine.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/100percenttuna/undertow/pkg/budget"
	"github.com/100percenttuna/undertow/pkg/config"
	"github.com/100percenttuna/undertow/pkg/database"
	"github.com/100percenttuna/undertow/pkg/gateway"
	"github.com/100percenttuna/undertow/pkg/metrics"
	"github.com/100percenttuna/undertow/pkg/queue"
	"github.com/100percenttuna/undertow/pkg/services"
	"github.com/100percenttuna/undertow/pkg/version"
)

// Server is the HTTP API server.
type Server struct {
	engine      *gin.Engine
	httpServer  *http.Server
	cfg         *config.Config
	dbClient    *database.Client
	runService  *services.RunService
	storySvc    *services.StoryService
	escalations *services.EscalationService
	ledger      *services.LedgerService
	workerPool  *queue.WorkerPool
	budgetCtl   *budget.Controller
	gw          *gateway.Gateway
	registry    *prometheus.Registry
}

// NewServer creates a new API server.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	runService *services.RunService,
	storySvc *services.StoryService,
	escalations *services.EscalationService,
	ledger *services.LedgerService,
	workerPool *queue.WorkerPool,
	budgetCtl *budget.Controller,
	gw *gateway.Gateway,
	registry *prometheus.Registry,
) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())

	s := &Server{
		engine:      engine,
		cfg:         cfg,
		dbClient:    dbClient,
		runService:  runService,
		storySvc:    storySvc,
		escalations: escalations,
		ledger:      ledger,
		workerPool:  workerPool,
		budgetCtl:   budgetCtl,
		gw:          gw,
		registry:    registry,
	}
	s.setupRoutes()
	return s
}

// setupRoutes registers all HTTP routes.
func (s *Server) setupRoutes() {
	s.engine.GET("/health", s.handleHealth)
	if s.registry != nil {
		s.engine.GET("/metrics", gin.WrapH(metrics.Handler(s.registry)))
	}

	v1 := s.engine.Group("/api/v1")
	{
		v1.POST("/pipeline-runs", s.handleStartPipeline)
		v1.GET("/pipeline-runs/:id", s.handleGetRun)
		v1.POST("/pipeline-runs/:id/pause", s.handlePauseRun)
		v1.POST("/pipeline-runs/:id/resume", s.handleResumeRun)
		v1.POST("/pipeline-runs/:id/cancel", s.handleCancelRun)

		v1.GET("/stories/:id", s.handleGetStory)
		v1.POST("/stories/:id/retry", s.handleRetryStory)
		v1.POST("/stories/:id/cancel", s.handleCancelStory)

		v1.GET("/escalations", s.handleListEscalations)
		v1.GET("/escalations/:id", s.handleGetEscalation)
		v1.POST("/escalations/:id/resolve", s.handleResolveEscalation)

		v1.GET("/budget", s.handleGetBudget)
		v1.POST("/budget/override", s.handleBudgetOverride)
	}
}

// Start begins serving on the given address.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("API server listening", "addr", addr, "version", version.Version)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// requestLogger is a minimal slog-based access logger.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
