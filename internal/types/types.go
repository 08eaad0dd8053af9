package types

import (
	"fmt"
	"strings"
	"time"
)

// SentimentLabel classifies the tone of a news item or an aggregate.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNeutral  SentimentLabel = "neutral"
	SentimentNegative SentimentLabel = "negative"
)

// Action is the closed set of advisor verdicts.
type Action string

const (
	ActionBuy  Action = "buy"
	ActionSell Action = "sell"
	ActionHold Action = "hold"
)

// ParseAction maps a raw model reply to an Action, case-insensitively.
// Anything outside buy/sell/hold is an error, never coerced to hold.
func ParseAction(raw string) (Action, error) {
	switch Action(strings.ToLower(strings.TrimSpace(raw))) {
	case ActionBuy:
		return ActionBuy, nil
	case ActionSell:
		return ActionSell, nil
	case ActionHold:
		return ActionHold, nil
	}
	return "", fmt.Errorf("unknown recommendation %q", raw)
}

// StockPerformance is a point-in-time snapshot for one symbol.
// Optional fields are omitted from JSON when unknown.
type StockPerformance struct {
	Symbol           string   `json:"symbol"`
	CurrentPrice     float64  `json:"current_price"`
	ChangePercentage float64  `json:"change_percentage"`
	Volume           int64    `json:"volume"`
	MarketCap        *float64 `json:"market_cap,omitempty"`
	PERatio          *float64 `json:"pe_ratio,omitempty"`
	DividendYield    *float64 `json:"dividend_yield,omitempty"`
}

// NewsItem is one article reference. Lists of NewsItem are ordered by
// recency by the provider and never re-sorted downstream.
type NewsItem struct {
	Title     string         `json:"title"`
	Source    string         `json:"source"`
	Date      time.Time      `json:"date"`
	Summary   string         `json:"summary"`
	Sentiment SentimentLabel `json:"sentiment"`
}

// SentimentAnalysis summarizes the aggregate tone of coverage for a symbol.
type SentimentAnalysis struct {
	Symbol            string         `json:"symbol"`
	SentimentScore    float64        `json:"sentiment_score"`
	SentimentCategory SentimentLabel `json:"sentiment_category"`
	AnalyzedArticles  *int           `json:"analyzed_articles,omitempty"`
	KeyFactors        []string       `json:"key_factors,omitempty"`
	Summary           string         `json:"summary"`
	Timestamp         time.Time      `json:"timestamp"`
}

// Verdict is the advisor's structured reply, already validated.
type Verdict struct {
	CompanyName     string  `json:"company_name"`
	Recommendation  Action  `json:"recommendation"`
	ConfidenceScore float64 `json:"confidence_score"`
	Rationale       string  `json:"rationale"`
}

// Recommendation is the full response object for one request.
type Recommendation struct {
	Symbol          string             `json:"symbol"`
	CompanyName     string             `json:"company_name"`
	CurrentPrice    float64            `json:"current_price"`
	Recommendation  Action             `json:"recommendation"`
	ConfidenceScore float64            `json:"confidence_score"`
	Rationale       string             `json:"rationale"`
	News            []NewsItem         `json:"news"`
	Performance     StockPerformance   `json:"performance"`
	Sentiment       *SentimentAnalysis `json:"sentiment,omitempty"`
	Timestamp       time.Time          `json:"timestamp"`
}

// TrendingStock is one entry of the trending list.
type TrendingStock struct {
	Symbol      string  `json:"symbol"`
	CompanyName string  `json:"company_name"`
	TrendScore  float64 `json:"trend_score"`
}
