package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stamble/internal/errs"
	"stamble/internal/store"
	"stamble/internal/types"
)

func testConfig() *store.Config {
	cfg := &store.Config{}
	cfg.LLM.Provider = "OPENAI"
	cfg.LLM.Model = "gpt-4o"
	cfg.LLM.MaxTokens = 600
	cfg.LLM.Temperature = 0.1
	cfg.LLM.System = "You are a financial analyst."
	return cfg
}

func fakeCompletionServer(t *testing.T, content string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing bearer credential")
		}
		if status >= 400 {
			w.WriteHeader(status)
			fmt.Fprint(w, `{"error":{"message":"boom"}}`)
			return
		}
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func sampleContext() (types.StockPerformance, []types.NewsItem, types.SentimentAnalysis) {
	perf := types.StockPerformance{Symbol: "AAPL", CurrentPrice: 189.84, ChangePercentage: 1.27, Volume: 53_000_000}
	news := []types.NewsItem{{Title: "Apple beats estimates", Source: "Reuters", Summary: "Strong quarter.", Sentiment: types.SentimentPositive}}
	sent := types.SentimentAnalysis{Symbol: "AAPL", SentimentScore: 0.6, SentimentCategory: types.SentimentPositive, Summary: "Positive coverage."}
	return perf, news, sent
}

func TestRecommendParsesValidReply(t *testing.T) {
	content := `{"company_name":"Apple Inc.","recommendation":"BUY","confidence_score":0.82,"rationale":"Strong momentum and positive coverage."}`
	srv := fakeCompletionServer(t, content, 200)
	defer srv.Close()

	a := NewAdvisor(testConfig(), "test-key", WithBaseURL(srv.URL))
	perf, news, sent := sampleContext()

	verdict, err := a.Recommend(context.Background(), "AAPL", perf, news, sent)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if verdict.Recommendation != types.ActionBuy {
		t.Errorf("expected buy, got %s", verdict.Recommendation)
	}
	if verdict.ConfidenceScore != 0.82 {
		t.Errorf("expected confidence 0.82, got %f", verdict.ConfidenceScore)
	}
	if verdict.CompanyName != "Apple Inc." {
		t.Errorf("expected company name, got %s", verdict.CompanyName)
	}
}

func TestRecommendRejectsMalformedJSON(t *testing.T) {
	srv := fakeCompletionServer(t, "I think you should buy this stock.", 200)
	defer srv.Close()

	a := NewAdvisor(testConfig(), "test-key", WithBaseURL(srv.URL))
	perf, news, sent := sampleContext()

	_, err := a.Recommend(context.Background(), "AAPL", perf, news, sent)
	if !errors.Is(err, errs.ErrAdvisorResponseInvalid) {
		t.Fatalf("expected AdvisorResponseInvalid, got %v", err)
	}
}

func TestRecommendRejectsOutOfRangeConfidence(t *testing.T) {
	content := `{"company_name":"Apple Inc.","recommendation":"buy","confidence_score":1.4,"rationale":"Too sure."}`
	srv := fakeCompletionServer(t, content, 200)
	defer srv.Close()

	a := NewAdvisor(testConfig(), "test-key", WithBaseURL(srv.URL))
	perf, news, sent := sampleContext()

	// Out-of-range confidence is rejected, never clamped.
	_, err := a.Recommend(context.Background(), "AAPL", perf, news, sent)
	if !errors.Is(err, errs.ErrAdvisorResponseInvalid) {
		t.Fatalf("expected AdvisorResponseInvalid, got %v", err)
	}
}

func TestRecommendRejectsUnknownAction(t *testing.T) {
	content := `{"company_name":"Apple Inc.","recommendation":"accumulate","confidence_score":0.7,"rationale":"Looks fine."}`
	srv := fakeCompletionServer(t, content, 200)
	defer srv.Close()

	a := NewAdvisor(testConfig(), "test-key", WithBaseURL(srv.URL))
	perf, news, sent := sampleContext()

	_, err := a.Recommend(context.Background(), "AAPL", perf, news, sent)
	if !errors.Is(err, errs.ErrAdvisorResponseInvalid) {
		t.Fatalf("expected AdvisorResponseInvalid, got %v", err)
	}
}

func TestRecommendRejectsEmptyRationale(t *testing.T) {
	content := `{"company_name":"Apple Inc.","recommendation":"hold","confidence_score":0.5,"rationale":"  "}`
	srv := fakeCompletionServer(t, content, 200)
	defer srv.Close()

	a := NewAdvisor(testConfig(), "test-key", WithBaseURL(srv.URL))
	perf, news, sent := sampleContext()

	_, err := a.Recommend(context.Background(), "AAPL", perf, news, sent)
	if !errors.Is(err, errs.ErrAdvisorResponseInvalid) {
		t.Fatalf("expected AdvisorResponseInvalid, got %v", err)
	}
}

func TestRecommendMapsServerErrorToUpstreamFailure(t *testing.T) {
	srv := fakeCompletionServer(t, "", 500)
	defer srv.Close()

	a := NewAdvisor(testConfig(), "test-key", WithBaseURL(srv.URL))
	perf, news, sent := sampleContext()

	_, err := a.Recommend(context.Background(), "AAPL", perf, news, sent)
	if !errors.Is(err, errs.ErrUpstreamFailure) {
		t.Fatalf("expected UpstreamFailure, got %v", err)
	}
}

func TestBuildPromptEmbedsContext(t *testing.T) {
	perf, news, sent := sampleContext()
	prompt := buildPrompt("AAPL", perf, news, sent)

	for _, want := range []string{"189.84", "Apple beats estimates", "Positive coverage.", "buy", "confidence_score"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
