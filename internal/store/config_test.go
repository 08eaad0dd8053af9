package store

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "{}\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("expected default port 8000, got %d", cfg.Server.Port)
	}
	if cfg.DataSource != "STATIC" {
		t.Errorf("expected default data_source STATIC, got %s", cfg.DataSource)
	}
	if cfg.News.MaxItems != 5 {
		t.Errorf("expected default max_items 5, got %d", cfg.News.MaxItems)
	}
	if cfg.Sentiment.PositiveThreshold != 0.3 || cfg.Sentiment.NegativeThreshold != -0.3 {
		t.Errorf("unexpected default thresholds: %f %f", cfg.Sentiment.PositiveThreshold, cfg.Sentiment.NegativeThreshold)
	}
	if cfg.LLM.Model != "gpt-4o" {
		t.Errorf("expected default model gpt-4o, got %s", cfg.LLM.Model)
	}
	if len(cfg.Trending) != 5 {
		t.Errorf("expected 5 default trending entries, got %d", len(cfg.Trending))
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
data_source: LIVE
news:
  max_items: 3
llm:
  provider: STATIC
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.DataSource != "LIVE" {
		t.Errorf("expected LIVE, got %s", cfg.DataSource)
	}
	if cfg.News.MaxItems != 3 {
		t.Errorf("expected max_items 3, got %d", cfg.News.MaxItems)
	}
	if cfg.LLM.Provider != "STATIC" {
		t.Errorf("expected STATIC provider, got %s", cfg.LLM.Provider)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"bad data_source", "data_source: CSV\n"},
		{"bad port", "server:\n  port: 70000\n"},
		{"bad llm provider", "llm:\n  provider: GEMINI\n"},
		{"positive threshold out of range", "sentiment:\n  positive_threshold: 1.5\n  negative_threshold: -0.3\n"},
		{"negative threshold wrong sign", "sentiment:\n  positive_threshold: 0.3\n  negative_threshold: 0.2\n"},
		{"trending score out of range", "trending:\n  - {symbol: AAPL, company_name: Apple, trend_score: 1.2}\n"},
		{"duplicate trending symbol", "trending:\n  - {symbol: AAPL, company_name: Apple, trend_score: 0.9}\n  - {symbol: AAPL, company_name: Apple, trend_score: 0.8}\n"},
	}

	for _, tc := range cases {
		path := writeConfig(t, tc.content)
		if _, err := LoadConfig(path); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}
