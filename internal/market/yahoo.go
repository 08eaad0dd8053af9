package market

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"stamble/internal/api"
	"stamble/internal/errs"
	"stamble/internal/types"
)

const yahooChartBaseURL = "https://query1.finance.yahoo.com"

// YahooProvider fetches quote snapshots from the Yahoo Finance chart API.
type YahooProvider struct {
	client *api.Client
}

func NewYahooProvider() *YahooProvider {
	opts := []api.ClientOption{
		api.WithBaseURL(yahooChartBaseURL),
		api.WithTimeout(15 * time.Second),
		api.WithLogging(true),
	}
	for k, v := range api.YahooFinanceHeaders() {
		opts = append(opts, api.WithHeader(k, v))
	}
	return &YahooProvider{client: api.NewClient(opts...)}
}

// chartResponse mirrors the slice of the chart payload this provider reads.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol              string  `json:"symbol"`
				RegularMarketPrice  float64 `json:"regularMarketPrice"`
				ChartPreviousClose  float64 `json:"chartPreviousClose"`
				RegularMarketVolume int64   `json:"regularMarketVolume"`
			} `json:"meta"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func (p *YahooProvider) GetPerformance(ctx context.Context, symbol string) (types.StockPerformance, error) {
	path := fmt.Sprintf("/v8/finance/chart/%s?range=1d&interval=1d", url.PathEscape(symbol))

	resp, err := p.client.GET(ctx, path)
	if err != nil {
		if resp != nil && resp.StatusCode == 404 {
			return types.StockPerformance{}, fmt.Errorf("yahoo has no chart for %s: %w", symbol, errs.ErrNotFound)
		}
		return types.StockPerformance{}, fmt.Errorf("yahoo chart request failed: %w", errs.ErrDataUnavailable)
	}

	var cr chartResponse
	if err := resp.ParseJSON(&cr); err != nil {
		return types.StockPerformance{}, fmt.Errorf("yahoo chart payload unreadable: %w", errs.ErrDataUnavailable)
	}
	if cr.Chart.Error != nil {
		return types.StockPerformance{}, fmt.Errorf("yahoo chart error %s: %w", cr.Chart.Error.Code, errs.ErrNotFound)
	}
	if len(cr.Chart.Result) == 0 {
		return types.StockPerformance{}, fmt.Errorf("yahoo chart empty for %s: %w", symbol, errs.ErrNotFound)
	}

	meta := cr.Chart.Result[0].Meta
	if meta.RegularMarketPrice <= 0 {
		return types.StockPerformance{}, fmt.Errorf("yahoo quote has no price for %s: %w", symbol, errs.ErrDataUnavailable)
	}

	changePct := 0.0
	if meta.ChartPreviousClose > 0 {
		changePct = (meta.RegularMarketPrice - meta.ChartPreviousClose) / meta.ChartPreviousClose * 100
	}

	// The chart endpoint carries no market cap, P/E or dividend data;
	// those fields stay absent rather than zero-filled.
	return types.StockPerformance{
		Symbol:           meta.Symbol,
		CurrentPrice:     meta.RegularMarketPrice,
		ChangePercentage: changePct,
		Volume:           meta.RegularMarketVolume,
	}, nil
}
