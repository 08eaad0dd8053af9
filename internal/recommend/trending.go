package recommend

import (
	"stamble/internal/store"
	"stamble/internal/types"
)

// TrendingList returns the configured trending stocks in config order.
// Score range and symbol uniqueness are enforced by config validation
// at startup, so this is a straight projection.
func TrendingList(cfg *store.Config) []types.TrendingStock {
	out := make([]types.TrendingStock, 0, len(cfg.Trending))
	for _, t := range cfg.Trending {
		out = append(out, types.TrendingStock{
			Symbol:      t.Symbol,
			CompanyName: t.CompanyName,
			TrendScore:  t.TrendScore,
		})
	}
	return out
}
