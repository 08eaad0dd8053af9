package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stamble/internal/errs"
	"stamble/internal/logger"
	"stamble/internal/store"
	"stamble/internal/types"
)

const version = "0.1.0"

// Recommender is what the HTTP layer needs from the orchestrator.
type Recommender interface {
	BuildRecommendation(ctx context.Context, symbol string) (*types.Recommendation, error)
}

// Server exposes the recommendation API over HTTP.
type Server struct {
	cfg         *store.Config
	recommender Recommender
	trending    []types.TrendingStock
	engine      *gin.Engine
}

func New(cfg *store.Config, recommender Recommender, trending []types.TrendingStock) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		cfg:         cfg,
		recommender: recommender,
		trending:    trending,
		engine:      gin.New(),
	}

	s.engine.Use(gin.Recovery())
	s.engine.Use(requestID())
	s.engine.Use(cors(cfg.Server.CORSOrigins))

	s.engine.GET("/", s.handleRoot)
	s.engine.GET("/health", s.handleHealth)

	apiGroup := s.engine.Group("/api")
	apiGroup.GET("/stocks/trending", s.handleTrending)
	apiGroup.GET("/stocks/:symbol/recommendation", s.handleRecommendation)

	return s
}

// Engine exposes the router for handler tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.cfg.Server.Port),
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info(context.Background(), "HTTP server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to Stamble API",
		"version": version,
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	// Echoes only non-sensitive configuration.
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
		"config": gin.H{
			"data_source":  s.cfg.DataSource,
			"llm_provider": s.cfg.LLM.Provider,
			"port":         s.cfg.Server.Port,
			"cors_origins": s.cfg.Server.CORSOrigins,
		},
	})
}

func (s *Server) handleTrending(c *gin.Context) {
	c.JSON(http.StatusOK, s.trending)
}

func (s *Server) handleRecommendation(c *gin.Context) {
	symbol := c.Param("symbol")

	rec, err := s.recommender.BuildRecommendation(c.Request.Context(), symbol)
	if err != nil {
		s.writeError(c, symbol, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

// writeError maps pipeline errors to statuses with caller-safe bodies.
// Raw upstream error text never reaches the client.
func (s *Server) writeError(c *gin.Context, symbol string, err error) {
	ctx := c.Request.Context()

	switch {
	case errors.Is(err, context.Canceled):
		// Client went away; nothing useful to write.
		c.AbortWithStatus(499)
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, gin.H{"detail": "request timed out"})
	case errors.Is(err, errs.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": fmt.Sprintf("unknown symbol: %s", symbol)})
	case errors.Is(err, errs.ErrUpstreamFailure), errors.Is(err, errs.ErrAdvisorResponseInvalid):
		logger.ErrorWithErr(ctx, "Advisor pipeline failed", err, "symbol", symbol)
		c.JSON(http.StatusBadGateway, gin.H{"detail": "recommendation service temporarily unavailable"})
	case errors.Is(err, errs.ErrDataUnavailable):
		logger.ErrorWithErr(ctx, "Market data unavailable", err, "symbol", symbol)
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "market data temporarily unavailable"})
	default:
		logger.ErrorWithErr(ctx, "Unhandled recommendation error", err, "symbol", symbol)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
	}
}
