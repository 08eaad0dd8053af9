package news

import (
	"time"

	"stamble/internal/interfaces"
	"stamble/internal/store"
)

// NewProvider returns the news provider for the configured data source.
func NewProvider(cfg *store.Config) interfaces.NewsProvider {
	if cfg.DataSource == "LIVE" {
		return NewScraper(30 * time.Second)
	}
	return NewStaticProvider()
}
