package interfaces

import (
	"context"

	"stamble/internal/types"
)

type SentimentAnalyzer interface {
	AnalyzeSentiment(ctx context.Context, symbol string, items []types.NewsItem) (types.SentimentAnalysis, error)
}
