package news

import (
	"context"
	"testing"
	"time"

	"stamble/internal/types"
)

func TestStaticProviderItemsAreRecencyOrdered(t *testing.T) {
	p := NewStaticProvider()

	items, err := p.GetNews(context.Background(), "AAPL", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) == 0 {
		t.Fatal("expected items")
	}

	for i := 1; i < len(items); i++ {
		if items[i].Date.After(items[i-1].Date) {
			t.Errorf("item %d is newer than item %d", i, i-1)
		}
	}
	if time.Since(items[0].Date) > 24*time.Hour {
		t.Errorf("newest item should be within a day, got %s", items[0].Date)
	}
}

func TestStaticProviderRespectsMaxItems(t *testing.T) {
	p := NewStaticProvider()

	items, err := p.GetNews(context.Background(), "TSLA", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Errorf("expected 2 items, got %d", len(items))
	}
}

func TestStaticProviderLabelsEveryItem(t *testing.T) {
	p := NewStaticProvider()

	items, err := p.GetNews(context.Background(), "MSFT", 10)
	if err != nil {
		t.Fatal(err)
	}

	valid := map[types.SentimentLabel]bool{
		types.SentimentPositive: true,
		types.SentimentNeutral:  true,
		types.SentimentNegative: true,
	}
	for _, it := range items {
		if !valid[it.Sentiment] {
			t.Errorf("item %q has invalid sentiment %q", it.Title, it.Sentiment)
		}
		if it.Title == "" || it.Source == "" {
			t.Errorf("item missing title or source: %+v", it)
		}
	}
}

func TestLabelHeadline(t *testing.T) {
	cases := []struct {
		title   string
		summary string
		want    types.SentimentLabel
	}{
		{"Shares surge after earnings beat", "", types.SentimentPositive},
		{"Regulator opens probe into accounting", "", types.SentimentNegative},
		{"Company schedules annual meeting", "Shareholders to vote on board seats.", types.SentimentNeutral},
		// Negative cues win when both are present.
		{"Profit jumps but lawsuit looms", "", types.SentimentNegative},
		// Cues match whole words only: "update" must not match "up".
		{"Company releases software update", "", types.SentimentNeutral},
	}

	for _, tc := range cases {
		if got := LabelHeadline(tc.title, tc.summary); got != tc.want {
			t.Errorf("LabelHeadline(%q): expected %s, got %s", tc.title, tc.want, got)
		}
	}
}
