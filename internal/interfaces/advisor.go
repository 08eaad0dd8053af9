package interfaces

import (
	"context"

	"stamble/internal/types"
)

type Advisor interface {
	Recommend(ctx context.Context, symbol string, perf types.StockPerformance, news []types.NewsItem, sentiment types.SentimentAnalysis) (types.Verdict, error)
}
