package market

import (
	"context"
	"fmt"
	"strings"

	"stamble/internal/errs"
	"stamble/internal/types"
)

// StaticProvider serves performance snapshots from a fixed table of
// large-cap tickers. Used in STATIC mode and as the deterministic
// fixture source in tests.
type StaticProvider struct {
	quotes map[string]types.StockPerformance
}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{quotes: defaultQuotes()}
}

func defaultQuotes() map[string]types.StockPerformance {
	return map[string]types.StockPerformance{
		"AAPL":  {Symbol: "AAPL", CurrentPrice: 189.84, ChangePercentage: 1.27, Volume: 53_460_100, MarketCap: f(2.95e12), PERatio: f(29.4), DividendYield: f(0.55)},
		"MSFT":  {Symbol: "MSFT", CurrentPrice: 415.32, ChangePercentage: 0.84, Volume: 21_320_400, MarketCap: f(3.09e12), PERatio: f(36.1), DividendYield: f(0.72)},
		"GOOGL": {Symbol: "GOOGL", CurrentPrice: 174.46, ChangePercentage: -0.42, Volume: 27_840_900, MarketCap: f(2.15e12), PERatio: f(26.8)},
		"AMZN":  {Symbol: "AMZN", CurrentPrice: 186.51, ChangePercentage: 2.03, Volume: 41_250_700, MarketCap: f(1.94e12), PERatio: f(51.2)},
		"TSLA":  {Symbol: "TSLA", CurrentPrice: 248.98, ChangePercentage: -1.85, Volume: 98_110_300, MarketCap: f(7.92e11), PERatio: f(71.6)},
		"NVDA":  {Symbol: "NVDA", CurrentPrice: 131.26, ChangePercentage: 3.41, Volume: 312_540_200, MarketCap: f(3.23e12), PERatio: f(74.3), DividendYield: f(0.03)},
		"META":  {Symbol: "META", CurrentPrice: 504.22, ChangePercentage: 0.31, Volume: 12_904_600, MarketCap: f(1.28e12), PERatio: f(28.9), DividendYield: f(0.40)},
		"NFLX":  {Symbol: "NFLX", CurrentPrice: 642.17, ChangePercentage: 1.12, Volume: 3_218_800, MarketCap: f(2.76e11), PERatio: f(43.5)},
	}
}

func f(v float64) *float64 { return &v }

func (p *StaticProvider) GetPerformance(ctx context.Context, symbol string) (types.StockPerformance, error) {
	perf, ok := p.quotes[strings.ToUpper(symbol)]
	if !ok {
		return types.StockPerformance{}, fmt.Errorf("no quote for %s: %w", symbol, errs.ErrNotFound)
	}
	return perf, nil
}
