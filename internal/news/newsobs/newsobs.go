package newsobs

import (
	"context"

	"stamble/internal/interfaces"
	"stamble/internal/logger"
	"stamble/internal/trace"
	"stamble/internal/types"
)

// observableProvider wraps a NewsProvider with logging & tracing
type observableProvider struct {
	provider interfaces.NewsProvider
}

// Compile-time interface check
var _ interfaces.NewsProvider = (*observableProvider)(nil)

// Wrap wraps a news provider with observability middleware
func Wrap(provider interfaces.NewsProvider) interfaces.NewsProvider {
	return &observableProvider{provider: provider}
}

func (op *observableProvider) GetNews(ctx context.Context, symbol string, maxItems int) ([]types.NewsItem, error) {
	ctx, span := trace.StartSpan(ctx, "news.GetNews")
	defer span.End()

	items, err := op.provider.GetNews(ctx, symbol, maxItems)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Failed to fetch news", err, "symbol", symbol)
		return nil, err
	}

	logger.DebugSkip(ctx, 1, "News fetched", "symbol", symbol, "count", len(items))

	return items, nil
}
