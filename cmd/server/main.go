package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stamble/internal/logger"
	"stamble/internal/recommend"
	"stamble/internal/server"
	"stamble/internal/trace"
)

func main() {
	if err := initializeSystem(); err != nil {
		fmt.Fprintf(os.Stderr, "startup failed: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(ctx)
	if err != nil {
		os.Exit(1)
	}

	orchestrator, err := buildOrchestrator(ctx, cfg)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to build recommendation pipeline", err)
		os.Exit(1)
	}

	srv := server.New(cfg, orchestrator, recommend.TrendingList(cfg))

	logger.Info(ctx, "Stamble API starting",
		"port", cfg.Server.Port,
		"data_source", cfg.DataSource,
		"llm_provider", cfg.LLM.Provider,
	)

	if err := srv.Run(ctx); err != nil {
		logger.ErrorWithErr(ctx, "HTTP server failed", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := trace.Shutdown(shutdownCtx); err != nil {
		logger.Warn(shutdownCtx, "Tracer shutdown failed", "error", err)
	}
}
