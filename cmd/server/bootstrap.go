package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"stamble/internal/advisor/advisorobs"
	"stamble/internal/advisor/openai"
	"stamble/internal/advisor/static"
	"stamble/internal/errs"
	"stamble/internal/interfaces"
	"stamble/internal/logger"
	"stamble/internal/market"
	"stamble/internal/market/marketobs"
	"stamble/internal/news"
	"stamble/internal/news/newsobs"
	"stamble/internal/recommend"
	"stamble/internal/sentiment"
	"stamble/internal/store"
	"stamble/internal/trace"
)

// initializeSystem loads the environment and brings up logging and tracing.
func initializeSystem() error {
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}

	return nil
}

// loadConfig loads and returns the configuration
func loadConfig(ctx context.Context) (*store.Config, error) {
	path := os.Getenv("STAMBLE_CONFIG")
	if path == "" {
		path = "config.yaml"
	}
	cfg, err := store.LoadConfig(path)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err, "path", path)
		return nil, err
	}
	return cfg, nil
}

// buildOrchestrator wires providers, analyzer and advisor into the
// orchestrator, each wrapped with observability middleware.
func buildOrchestrator(ctx context.Context, cfg *store.Config) (*recommend.Orchestrator, error) {
	performance := marketobs.Wrap(market.NewProvider(cfg))
	newsProvider := newsobs.Wrap(news.NewProvider(cfg))
	analyzer := sentiment.NewAnalyzer(cfg)

	advisor, err := initializeAdvisor(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.DataSource == "STATIC" {
		logger.Warn(ctx, "Using STATIC fixture data for market and news")
	}

	return recommend.New(cfg, performance, newsProvider, analyzer, advisor), nil
}

// initializeAdvisor selects the advisor implementation. The model
// credential comes only from the process environment and is validated
// here, at startup, so a missing key fails the boot instead of the
// first request.
func initializeAdvisor(ctx context.Context, cfg *store.Config) (interfaces.Advisor, error) {
	switch cfg.LLM.Provider {
	case "OPENAI":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required: %w", errs.ErrConfiguration)
		}
		return advisorobs.Wrap(openai.NewAdvisor(cfg, apiKey)), nil
	case "STATIC":
		logger.Warn(ctx, "Using STATIC advisor - verdicts are derived offline from sentiment")
		return advisorobs.Wrap(static.NewAdvisor()), nil
	default:
		return nil, fmt.Errorf("unsupported llm provider %q: %w", cfg.LLM.Provider, errs.ErrConfiguration)
	}
}
