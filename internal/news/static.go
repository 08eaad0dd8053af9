package news

import (
	"context"
	"fmt"
	"time"

	"stamble/internal/types"
)

// StaticProvider serves templated news items, newest first. Used in
// STATIC mode so the whole pipeline runs without network access.
type StaticProvider struct {
	now func() time.Time
}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{now: time.Now}
}

func (p *StaticProvider) GetNews(ctx context.Context, symbol string, maxItems int) ([]types.NewsItem, error) {
	now := p.now()
	items := []types.NewsItem{
		{
			Title:   fmt.Sprintf("%s Exceeds Quarterly Expectations", symbol),
			Source:  "MarketWatch",
			Date:    now.Add(-6 * time.Hour),
			Summary: fmt.Sprintf("%s reported better than expected earnings for the latest quarter.", symbol),
		},
		{
			Title:   fmt.Sprintf("%s Announces Strategic Partnership", symbol),
			Source:  "Reuters",
			Date:    now.Add(-26 * time.Hour),
			Summary: fmt.Sprintf("%s has entered into a strategic partnership to expand market presence.", symbol),
		},
		{
			Title:   fmt.Sprintf("What's Next for %s Stock?", symbol),
			Source:  "Seeking Alpha",
			Date:    now.Add(-2 * 24 * time.Hour),
			Summary: fmt.Sprintf("Analysis of %s's recent performance and future outlook.", symbol),
		},
		{
			Title:   fmt.Sprintf("Analysts Weigh In on %s Valuation Concerns", symbol),
			Source:  "Financial Times",
			Date:    now.Add(-3 * 24 * time.Hour),
			Summary: fmt.Sprintf("Some analysts see the %s rally cooling amid valuation concern.", symbol),
		},
		{
			Title:   fmt.Sprintf("%s Announces New Product Line", symbol),
			Source:  "Bloomberg",
			Date:    now.Add(-4 * 24 * time.Hour),
			Summary: fmt.Sprintf("%s unveiled a new product line expected to boost revenue next year.", symbol),
		},
	}

	for i := range items {
		items[i].Sentiment = LabelHeadline(items[i].Title, items[i].Summary)
	}

	if maxItems < len(items) {
		items = items[:maxItems]
	}
	return items, nil
}
