package market

import (
	"stamble/internal/interfaces"
	"stamble/internal/store"
)

// NewProvider returns the performance provider for the configured data
// source. STATIC is the default; LIVE talks to Yahoo Finance.
func NewProvider(cfg *store.Config) interfaces.PerformanceProvider {
	if cfg.DataSource == "LIVE" {
		return NewYahooProvider()
	}
	return NewStaticProvider()
}
