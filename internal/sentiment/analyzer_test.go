package sentiment

import (
	"context"
	"testing"
	"time"

	"stamble/internal/store"
	"stamble/internal/types"
)

func testConfig() *store.Config {
	cfg := &store.Config{}
	cfg.Sentiment.PositiveThreshold = 0.3
	cfg.Sentiment.NegativeThreshold = -0.3
	return cfg
}

func item(label types.SentimentLabel) types.NewsItem {
	return types.NewsItem{
		Title:     "headline",
		Source:    "Reuters",
		Date:      time.Now(),
		Summary:   "summary",
		Sentiment: label,
	}
}

func TestEmptyNewsReturnsNeutralDefault(t *testing.T) {
	a := NewAnalyzer(testConfig())

	got, err := a.AnalyzeSentiment(context.Background(), "AAPL", nil)
	if err != nil {
		t.Fatalf("expected no error for empty news, got %v", err)
	}

	if got.SentimentScore != 0 {
		t.Errorf("expected score 0, got %f", got.SentimentScore)
	}
	if got.SentimentCategory != types.SentimentNeutral {
		t.Errorf("expected neutral category, got %s", got.SentimentCategory)
	}
	if got.Symbol != "AAPL" {
		t.Errorf("expected symbol AAPL, got %s", got.Symbol)
	}
}

func TestScoreStaysInRange(t *testing.T) {
	a := NewAnalyzer(testConfig())

	allPositive := []types.NewsItem{item(types.SentimentPositive), item(types.SentimentPositive)}
	got, err := a.AnalyzeSentiment(context.Background(), "AAPL", allPositive)
	if err != nil {
		t.Fatal(err)
	}
	if got.SentimentScore < -1 || got.SentimentScore > 1 {
		t.Errorf("score %f outside [-1,1]", got.SentimentScore)
	}
	if got.SentimentScore != 1.0 {
		t.Errorf("expected score 1.0 for all-positive items, got %f", got.SentimentScore)
	}
	if got.SentimentCategory != types.SentimentPositive {
		t.Errorf("expected positive category, got %s", got.SentimentCategory)
	}
}

func TestCategoryConsistentWithScore(t *testing.T) {
	a := NewAnalyzer(testConfig())

	cases := []struct {
		name  string
		items []types.NewsItem
		want  types.SentimentLabel
	}{
		{"mostly negative", []types.NewsItem{item(types.SentimentNegative), item(types.SentimentNegative), item(types.SentimentNeutral)}, types.SentimentNegative},
		{"balanced", []types.NewsItem{item(types.SentimentPositive), item(types.SentimentNegative)}, types.SentimentNeutral},
		{"mostly positive", []types.NewsItem{item(types.SentimentPositive), item(types.SentimentPositive), item(types.SentimentNeutral)}, types.SentimentPositive},
	}

	for _, tc := range cases {
		got, err := a.AnalyzeSentiment(context.Background(), "MSFT", tc.items)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got.SentimentCategory != tc.want {
			t.Errorf("%s: expected %s, got %s (score %f)", tc.name, tc.want, got.SentimentCategory, got.SentimentScore)
		}
		if got.SentimentCategory != a.Categorize(got.SentimentScore) {
			t.Errorf("%s: category %s inconsistent with score %f", tc.name, got.SentimentCategory, got.SentimentScore)
		}
	}
}

func TestThresholdBoundariesAreExclusive(t *testing.T) {
	a := NewAnalyzer(testConfig())

	// Exactly at the threshold classifies neutral on both sides.
	if got := a.Categorize(0.3); got != types.SentimentNeutral {
		t.Errorf("score 0.3 should be neutral, got %s", got)
	}
	if got := a.Categorize(-0.3); got != types.SentimentNeutral {
		t.Errorf("score -0.3 should be neutral, got %s", got)
	}
	if got := a.Categorize(0.3000001); got != types.SentimentPositive {
		t.Errorf("score just above threshold should be positive, got %s", got)
	}
	if got := a.Categorize(-0.3000001); got != types.SentimentNegative {
		t.Errorf("score just below threshold should be negative, got %s", got)
	}
}

func TestKeyFactorsComeFromOpinionatedItems(t *testing.T) {
	a := NewAnalyzer(testConfig())

	items := []types.NewsItem{
		{Title: "Neutral update", Sentiment: types.SentimentNeutral},
		{Title: "Big earnings beat", Sentiment: types.SentimentPositive},
		{Title: "Regulatory probe", Sentiment: types.SentimentNegative},
	}

	got, err := a.AnalyzeSentiment(context.Background(), "TSLA", items)
	if err != nil {
		t.Fatal(err)
	}

	if len(got.KeyFactors) != 2 {
		t.Fatalf("expected 2 key factors, got %d", len(got.KeyFactors))
	}
	if got.KeyFactors[0] != "Big earnings beat" || got.KeyFactors[1] != "Regulatory probe" {
		t.Errorf("unexpected key factors: %v", got.KeyFactors)
	}
	if got.AnalyzedArticles == nil || *got.AnalyzedArticles != 3 {
		t.Errorf("expected analyzed_articles 3, got %v", got.AnalyzedArticles)
	}
}
