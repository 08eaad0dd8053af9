package sentiment

import (
	"context"
	"fmt"
	"time"

	"stamble/internal/logger"
	"stamble/internal/store"
	"stamble/internal/types"
)

// Analyzer derives a single score and category from already-labeled news
// items. Category is a pure function of the score and the configured
// thresholds, so the two can never disagree.
type Analyzer struct {
	positiveThreshold float64
	negativeThreshold float64
	now               func() time.Time
}

func NewAnalyzer(cfg *store.Config) *Analyzer {
	return &Analyzer{
		positiveThreshold: cfg.Sentiment.PositiveThreshold,
		negativeThreshold: cfg.Sentiment.NegativeThreshold,
		now:               time.Now,
	}
}

// Categorize maps a score to its label. Both boundaries are exclusive:
// a score exactly at a threshold classifies as neutral.
func (a *Analyzer) Categorize(score float64) types.SentimentLabel {
	switch {
	case score > a.positiveThreshold:
		return types.SentimentPositive
	case score < a.negativeThreshold:
		return types.SentimentNegative
	default:
		return types.SentimentNeutral
	}
}

func (a *Analyzer) AnalyzeSentiment(ctx context.Context, symbol string, items []types.NewsItem) (types.SentimentAnalysis, error) {
	if len(items) == 0 {
		logger.Info(ctx, "No news to analyze, returning neutral sentiment", "symbol", symbol)
		return NeutralDefault(symbol, a.now()), nil
	}

	var total float64
	counts := map[types.SentimentLabel]int{}
	keyFactors := []string{}

	for _, item := range items {
		counts[item.Sentiment]++
		switch item.Sentiment {
		case types.SentimentPositive:
			total += 1
		case types.SentimentNegative:
			total -= 1
		}
		if item.Sentiment != types.SentimentNeutral && len(keyFactors) < 3 {
			keyFactors = append(keyFactors, item.Title)
		}
	}

	score := total / float64(len(items))
	category := a.Categorize(score)
	count := len(items)

	summary := fmt.Sprintf("Analyzed %d articles for %s: %d positive, %d negative, %d neutral.",
		count, symbol,
		counts[types.SentimentPositive],
		counts[types.SentimentNegative],
		counts[types.SentimentNeutral])

	logger.Info(ctx, "Sentiment aggregated",
		"symbol", symbol, "score", score, "category", string(category), "articles", count)

	return types.SentimentAnalysis{
		Symbol:            symbol,
		SentimentScore:    score,
		SentimentCategory: category,
		AnalyzedArticles:  &count,
		KeyFactors:        keyFactors,
		Summary:           summary,
		Timestamp:         a.now(),
	}, nil
}

// NeutralDefault is the sentiment used when there is nothing to analyze
// or the analyzer itself failed and the request continues degraded.
func NeutralDefault(symbol string, ts time.Time) types.SentimentAnalysis {
	return types.SentimentAnalysis{
		Symbol:            symbol,
		SentimentScore:    0,
		SentimentCategory: types.SentimentNeutral,
		Summary:           fmt.Sprintf("No recent coverage analyzed for %s.", symbol),
		Timestamp:         ts,
	}
}
