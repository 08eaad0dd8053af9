package marketobs

import (
	"context"

	"stamble/internal/interfaces"
	"stamble/internal/logger"
	"stamble/internal/trace"
	"stamble/internal/types"
)

// observableProvider wraps a PerformanceProvider with logging & tracing
type observableProvider struct {
	provider interfaces.PerformanceProvider
}

// Compile-time interface check
var _ interfaces.PerformanceProvider = (*observableProvider)(nil)

// Wrap wraps a performance provider with observability middleware
func Wrap(provider interfaces.PerformanceProvider) interfaces.PerformanceProvider {
	return &observableProvider{provider: provider}
}

func (op *observableProvider) GetPerformance(ctx context.Context, symbol string) (types.StockPerformance, error) {
	ctx, span := trace.StartSpan(ctx, "market.GetPerformance")
	defer span.End()

	perf, err := op.provider.GetPerformance(ctx, symbol)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Failed to fetch performance", err, "symbol", symbol)
		return types.StockPerformance{}, err
	}

	logger.DebugSkip(ctx, 1, "Performance fetched",
		"symbol", symbol,
		"price", perf.CurrentPrice,
		"change_pct", perf.ChangePercentage,
	)

	return perf, nil
}
