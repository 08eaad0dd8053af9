package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port        int      `yaml:"port"`
		CORSOrigins []string `yaml:"cors_origins"`
	} `yaml:"server"`

	// DataSource selects where market and news data come from:
	// STATIC uses deterministic fixtures, LIVE uses Yahoo Finance.
	// Exactly one policy is in effect; the two are never mixed.
	DataSource string `yaml:"data_source"`

	News struct {
		MaxItems int `yaml:"max_items"`
	} `yaml:"news"`

	Sentiment struct {
		PositiveThreshold float64 `yaml:"positive_threshold"`
		NegativeThreshold float64 `yaml:"negative_threshold"`
	} `yaml:"sentiment"`

	LLM struct {
		Provider    string  `yaml:"provider"`
		Model       string  `yaml:"model"`
		MaxTokens   int     `yaml:"max_tokens"`
		Temperature float32 `yaml:"temperature"`
		System      string  `yaml:"system"`
	} `yaml:"llm"`

	Trending []TrendingEntry `yaml:"trending"`
}

type TrendingEntry struct {
	Symbol      string  `yaml:"symbol"`
	CompanyName string  `yaml:"company_name"`
	TrendScore  float64 `yaml:"trend_score"`
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1-65535, got %d", c.Server.Port)
	}
	if c.DataSource != "STATIC" && c.DataSource != "LIVE" {
		return fmt.Errorf("invalid data_source '%s': must be 'STATIC' or 'LIVE'", c.DataSource)
	}
	if c.News.MaxItems < 1 {
		return fmt.Errorf("news.max_items must be at least 1, got %d", c.News.MaxItems)
	}
	if c.Sentiment.PositiveThreshold <= 0 || c.Sentiment.PositiveThreshold > 1 {
		return fmt.Errorf("sentiment.positive_threshold must be in (0,1], got %.2f", c.Sentiment.PositiveThreshold)
	}
	if c.Sentiment.NegativeThreshold >= 0 || c.Sentiment.NegativeThreshold < -1 {
		return fmt.Errorf("sentiment.negative_threshold must be in [-1,0), got %.2f", c.Sentiment.NegativeThreshold)
	}
	if c.LLM.Provider != "OPENAI" && c.LLM.Provider != "STATIC" {
		return fmt.Errorf("invalid llm.provider '%s': must be 'OPENAI' or 'STATIC'", c.LLM.Provider)
	}
	seen := map[string]bool{}
	for _, t := range c.Trending {
		if t.Symbol == "" {
			return fmt.Errorf("trending entry missing symbol")
		}
		if seen[t.Symbol] {
			return fmt.Errorf("duplicate trending symbol '%s'", t.Symbol)
		}
		seen[t.Symbol] = true
		if t.TrendScore < 0 || t.TrendScore > 1 {
			return fmt.Errorf("trending score for '%s' must be in [0,1], got %.2f", t.Symbol, t.TrendScore)
		}
	}
	return nil
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}

func applyDefaults(c *Config) {
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if len(c.Server.CORSOrigins) == 0 {
		c.Server.CORSOrigins = []string{"http://localhost:3000"}
	}
	if c.DataSource == "" {
		c.DataSource = "STATIC"
	}
	if c.News.MaxItems == 0 {
		c.News.MaxItems = 5
	}
	if c.Sentiment.PositiveThreshold == 0 {
		c.Sentiment.PositiveThreshold = 0.3
	}
	if c.Sentiment.NegativeThreshold == 0 {
		c.Sentiment.NegativeThreshold = -0.3
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = "OPENAI"
	}
	if c.LLM.Model == "" {
		c.LLM.Model = "gpt-4o"
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 600
	}
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.1
	}
	if c.LLM.System == "" {
		c.LLM.System = "You are a financial expert AI assistant that provides stock investment recommendations based on data analysis."
	}
	if len(c.Trending) == 0 {
		c.Trending = []TrendingEntry{
			{Symbol: "AAPL", CompanyName: "Apple Inc.", TrendScore: 0.92},
			{Symbol: "MSFT", CompanyName: "Microsoft Corporation", TrendScore: 0.89},
			{Symbol: "GOOGL", CompanyName: "Alphabet Inc.", TrendScore: 0.87},
			{Symbol: "AMZN", CompanyName: "Amazon.com, Inc.", TrendScore: 0.85},
			{Symbol: "TSLA", CompanyName: "Tesla, Inc.", TrendScore: 0.82},
		}
	}
}
