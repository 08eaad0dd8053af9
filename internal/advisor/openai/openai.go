package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"stamble/internal/api"
	"stamble/internal/errs"
	"stamble/internal/store"
	"stamble/internal/trace"
	"stamble/internal/types"
)

const defaultBaseURL = "https://api.openai.com"

// Advisor issues one structured-output chat completion per call and
// parses the reply strictly. It holds no state between calls beyond the
// injected client and credential.
type Advisor struct {
	cfg     *store.Config
	apiKey  string
	client  *api.Client
	baseURL string
}

// Option configures the advisor.
type Option func(*Advisor)

// WithBaseURL points the advisor at a different API host. Tests use this
// to stand in a fake upstream.
func WithBaseURL(baseURL string) Option {
	return func(a *Advisor) {
		a.baseURL = baseURL
	}
}

// NewAdvisor creates an advisor with an explicitly injected credential.
// The key is held in memory only and never written to logs.
func NewAdvisor(cfg *store.Config, apiKey string, opts ...Option) *Advisor {
	a := &Advisor{
		cfg:     cfg,
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.client = api.NewClient(
		api.WithBaseURL(a.baseURL),
		api.WithTimeout(60*time.Second),
		api.WithHeader("Authorization", "Bearer "+apiKey),
	)
	return a
}

func (a *Advisor) Recommend(ctx context.Context, symbol string, perf types.StockPerformance, news []types.NewsItem, sentiment types.SentimentAnalysis) (types.Verdict, error) {
	ctx, span := trace.StartSpan(ctx, "openai-api-call")
	defer span.End()

	if a.apiKey == "" {
		return types.Verdict{}, fmt.Errorf("model credential missing: %w", errs.ErrConfiguration)
	}

	prompt := buildPrompt(symbol, perf, news, sentiment)

	body := map[string]any{
		"model": a.cfg.LLM.Model,
		"messages": []map[string]string{
			{"role": "system", "content": a.cfg.LLM.System},
			{"role": "user", "content": prompt},
		},
		"temperature":     a.cfg.LLM.Temperature,
		"max_tokens":      a.cfg.LLM.MaxTokens,
		"response_format": map[string]string{"type": "json_object"},
	}

	resp, err := a.client.POST(ctx, "/v1/chat/completions", body)
	if err != nil {
		if ctx.Err() != nil {
			return types.Verdict{}, ctx.Err()
		}
		return types.Verdict{}, fmt.Errorf("chat completion call failed: %w", errs.ErrUpstreamFailure)
	}

	var r struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := resp.ParseJSON(&r); err != nil {
		return types.Verdict{}, fmt.Errorf("chat completion envelope unreadable: %w", errs.ErrUpstreamFailure)
	}
	if len(r.Choices) == 0 {
		return types.Verdict{}, fmt.Errorf("chat completion returned no choices: %w", errs.ErrUpstreamFailure)
	}

	return parseVerdict(symbol, r.Choices[0].Message.Content)
}

// parseVerdict validates the model reply. Malformed or out-of-range
// replies are rejected; a broken reply is never coerced into a hold.
func parseVerdict(symbol, content string) (types.Verdict, error) {
	var raw struct {
		CompanyName     string   `json:"company_name"`
		Recommendation  string   `json:"recommendation"`
		ConfidenceScore *float64 `json:"confidence_score"`
		Rationale       string   `json:"rationale"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &raw); err != nil {
		return types.Verdict{}, fmt.Errorf("reply is not valid JSON: %w", errs.ErrAdvisorResponseInvalid)
	}

	action, err := types.ParseAction(raw.Recommendation)
	if err != nil {
		return types.Verdict{}, fmt.Errorf("%v: %w", err, errs.ErrAdvisorResponseInvalid)
	}
	if raw.ConfidenceScore == nil {
		return types.Verdict{}, fmt.Errorf("missing confidence_score: %w", errs.ErrAdvisorResponseInvalid)
	}
	if *raw.ConfidenceScore < 0 || *raw.ConfidenceScore > 1 {
		return types.Verdict{}, fmt.Errorf("confidence_score %.3f outside [0,1]: %w", *raw.ConfidenceScore, errs.ErrAdvisorResponseInvalid)
	}
	if strings.TrimSpace(raw.Rationale) == "" {
		return types.Verdict{}, fmt.Errorf("missing rationale: %w", errs.ErrAdvisorResponseInvalid)
	}

	companyName := strings.TrimSpace(raw.CompanyName)
	if companyName == "" {
		companyName = symbol
	}

	return types.Verdict{
		CompanyName:     companyName,
		Recommendation:  action,
		ConfidenceScore: *raw.ConfidenceScore,
		Rationale:       raw.Rationale,
	}, nil
}

func buildPrompt(symbol string, perf types.StockPerformance, news []types.NewsItem, sentiment types.SentimentAnalysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Based on the following data about %s, provide an investment recommendation (buy, sell, or hold).\n\n", symbol)

	fmt.Fprintf(&b, "STOCK DATA:\n")
	fmt.Fprintf(&b, "- current price: %.2f\n", perf.CurrentPrice)
	fmt.Fprintf(&b, "- change: %.2f%%\n", perf.ChangePercentage)
	fmt.Fprintf(&b, "- volume: %d\n", perf.Volume)
	if perf.MarketCap != nil {
		fmt.Fprintf(&b, "- market cap: %.0f\n", *perf.MarketCap)
	}
	if perf.PERatio != nil {
		fmt.Fprintf(&b, "- P/E ratio: %.2f\n", *perf.PERatio)
	}
	if perf.DividendYield != nil {
		fmt.Fprintf(&b, "- dividend yield: %.2f%%\n", *perf.DividendYield)
	}

	fmt.Fprintf(&b, "\nRECENT NEWS:\n")
	if len(news) == 0 {
		fmt.Fprintf(&b, "- no recent news available\n")
	}
	for _, item := range news {
		fmt.Fprintf(&b, "- [%s] %s: %s\n", item.Sentiment, item.Title, item.Summary)
	}

	fmt.Fprintf(&b, "\nMARKET SENTIMENT:\n")
	fmt.Fprintf(&b, "- score: %.2f (%s)\n", sentiment.SentimentScore, sentiment.SentimentCategory)
	fmt.Fprintf(&b, "- summary: %s\n", sentiment.Summary)
	for _, factor := range sentiment.KeyFactors {
		fmt.Fprintf(&b, "- key factor: %s\n", factor)
	}

	fmt.Fprintf(&b, `
Analyze this information and reply with a JSON object with these fields:
- company_name: the full company name
- recommendation: "buy", "sell", or "hold"
- confidence_score: a value from 0 to 1 indicating confidence level
- rationale: a clear explanation of your recommendation

Your response must be valid JSON only.
`)

	return b.String()
}
