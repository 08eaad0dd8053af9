package advisorobs

import (
	"context"

	"stamble/internal/interfaces"
	"stamble/internal/logger"
	"stamble/internal/trace"
	"stamble/internal/types"
)

// observableAdvisor wraps an Advisor with observability (logging & tracing)
type observableAdvisor struct {
	advisor interfaces.Advisor
}

// Compile-time interface check
var _ interfaces.Advisor = (*observableAdvisor)(nil)

// Wrap wraps an advisor with observability middleware
func Wrap(advisor interfaces.Advisor) interfaces.Advisor {
	return &observableAdvisor{advisor: advisor}
}

func (oa *observableAdvisor) Recommend(ctx context.Context, symbol string, perf types.StockPerformance, news []types.NewsItem, sentiment types.SentimentAnalysis) (types.Verdict, error) {
	ctx, span := trace.StartSpan(ctx, "advisor.Recommend")
	defer span.End()

	logger.DebugSkip(ctx, 1, "Requesting advisor verdict",
		"symbol", symbol,
		"price", perf.CurrentPrice,
		"news_count", len(news),
		"sentiment", string(sentiment.SentimentCategory),
	)

	verdict, err := oa.advisor.Recommend(ctx, symbol, perf, news, sentiment)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Failed to get advisor verdict", err, "symbol", symbol)
		return types.Verdict{}, err
	}

	logger.Recommendation(ctx, symbol, string(verdict.Recommendation), verdict.ConfidenceScore,
		"company", verdict.CompanyName)

	return verdict, nil
}
