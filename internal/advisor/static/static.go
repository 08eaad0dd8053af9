package static

import (
	"context"
	"fmt"
	"math"

	"stamble/internal/types"
)

// Advisor produces a deterministic verdict from the aggregated sentiment.
// Used for offline development; never selected when a real model verdict
// is expected.
type Advisor struct{}

func NewAdvisor() *Advisor {
	return &Advisor{}
}

func (a *Advisor) Recommend(ctx context.Context, symbol string, perf types.StockPerformance, news []types.NewsItem, sentiment types.SentimentAnalysis) (types.Verdict, error) {
	action := types.ActionHold
	switch sentiment.SentimentCategory {
	case types.SentimentPositive:
		action = types.ActionBuy
	case types.SentimentNegative:
		action = types.ActionSell
	}

	// Confidence grows with how decisive the aggregate score is.
	confidence := 0.5 + math.Abs(sentiment.SentimentScore)/2
	if confidence > 1 {
		confidence = 1
	}

	return types.Verdict{
		CompanyName:     symbol,
		Recommendation:  action,
		ConfidenceScore: confidence,
		Rationale: fmt.Sprintf("Offline verdict derived from %s aggregate news sentiment (score %.2f) across %d items.",
			sentiment.SentimentCategory, sentiment.SentimentScore, len(news)),
	}, nil
}
