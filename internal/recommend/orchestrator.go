package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"stamble/internal/errs"
	"stamble/internal/interfaces"
	"stamble/internal/logger"
	"stamble/internal/sentiment"
	"stamble/internal/store"
	"stamble/internal/trace"
	"stamble/internal/types"
)

// Orchestrator is the composition root for one recommendation request:
// it fans out to the data providers, assembles their results and asks
// the advisor for a verdict. It holds no per-request state; every call
// builds and owns its own context data.
type Orchestrator struct {
	performance  interfaces.PerformanceProvider
	news         interfaces.NewsProvider
	analyzer     interfaces.SentimentAnalyzer
	advisor      interfaces.Advisor
	maxNewsItems int
	now          func() time.Time
}

func New(cfg *store.Config, performance interfaces.PerformanceProvider, news interfaces.NewsProvider, analyzer interfaces.SentimentAnalyzer, advisor interfaces.Advisor) *Orchestrator {
	return &Orchestrator{
		performance:  performance,
		news:         news,
		analyzer:     analyzer,
		advisor:      advisor,
		maxNewsItems: cfg.News.MaxItems,
		now:          time.Now,
	}
}

// NormalizeSymbol canonicalizes a ticker: trimmed, uppercase.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

type perfResult struct {
	perf types.StockPerformance
	err  error
}

type contextResult struct {
	news    []types.NewsItem
	sent    types.SentimentAnalysis
	newsErr error
	sentErr error
}

// BuildRecommendation runs the full pipeline for one symbol.
//
// Performance and the news→sentiment chain run concurrently; sentiment
// genuinely depends on the news result so those two stay sequential.
// A NotFound from the performance provider aborts the request before
// any advisor call. News or sentiment failures degrade to an empty
// list / neutral default. The advisor gets exactly one retry.
func (o *Orchestrator) BuildRecommendation(ctx context.Context, symbol string) (*types.Recommendation, error) {
	symbol = NormalizeSymbol(symbol)
	if symbol == "" {
		return nil, fmt.Errorf("empty symbol: %w", errs.ErrNotFound)
	}

	ctx, span := trace.StartSpan(ctx, "recommend.BuildRecommendation")
	defer span.End()

	logger.Info(ctx, "Fetching context", "symbol", symbol)

	perfCh := make(chan perfResult, 1)
	ctxCh := make(chan contextResult, 1)

	go func() {
		perf, err := o.performance.GetPerformance(ctx, symbol)
		perfCh <- perfResult{perf: perf, err: err}
	}()

	go func() {
		var res contextResult
		res.news, res.newsErr = o.news.GetNews(ctx, symbol, o.maxNewsItems)
		if res.newsErr != nil {
			res.news = nil
		}
		res.sent, res.sentErr = o.analyzer.AnalyzeSentiment(ctx, symbol, res.news)
		ctxCh <- res
	}()

	pr := <-perfCh
	cr := <-ctxCh

	if pr.err != nil {
		if errors.Is(pr.err, errs.ErrNotFound) {
			return nil, fmt.Errorf("unknown symbol %s: %w", symbol, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("performance lookup for %s failed: %w", symbol, errs.ErrDataUnavailable)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	newsItems := cr.news
	if cr.newsErr != nil {
		logger.Degraded(ctx, symbol, "news", cr.newsErr)
		newsItems = []types.NewsItem{}
	}
	if newsItems == nil {
		newsItems = []types.NewsItem{}
	}

	sent := cr.sent
	if cr.sentErr != nil {
		logger.Degraded(ctx, symbol, "sentiment", cr.sentErr)
		sent = sentiment.NeutralDefault(symbol, o.now())
	}

	logger.Info(ctx, "Awaiting advisor", "symbol", symbol, "news_count", len(newsItems))

	verdict, err := o.callAdvisor(ctx, symbol, pr.perf, newsItems, sent)
	if err != nil {
		return nil, err
	}

	rec := &types.Recommendation{
		Symbol:          symbol,
		CompanyName:     verdict.CompanyName,
		CurrentPrice:    pr.perf.CurrentPrice,
		Recommendation:  verdict.Recommendation,
		ConfidenceScore: verdict.ConfidenceScore,
		Rationale:       verdict.Rationale,
		News:            newsItems,
		Performance:     pr.perf,
		Sentiment:       &sent,
		Timestamp:       o.now(),
	}
	return rec, nil
}

// callAdvisor invokes the advisor, allowing a single retry on an invalid
// reply or an upstream failure. A second failure aborts the request;
// no verdict is ever fabricated.
func (o *Orchestrator) callAdvisor(ctx context.Context, symbol string, perf types.StockPerformance, news []types.NewsItem, sent types.SentimentAnalysis) (types.Verdict, error) {
	verdict, err := o.advisor.Recommend(ctx, symbol, perf, news, sent)
	if err == nil {
		return verdict, nil
	}
	if ctx.Err() != nil {
		return types.Verdict{}, ctx.Err()
	}
	if !errors.Is(err, errs.ErrAdvisorResponseInvalid) && !errors.Is(err, errs.ErrUpstreamFailure) {
		return types.Verdict{}, err
	}

	logger.Warn(ctx, "Advisor attempt failed, retrying once", "symbol", symbol, "error", err)

	verdict, err = o.advisor.Recommend(ctx, symbol, perf, news, sent)
	if err != nil {
		if ctx.Err() != nil {
			return types.Verdict{}, ctx.Err()
		}
		return types.Verdict{}, fmt.Errorf("advisor failed after retry: %w", errs.ErrUpstreamFailure)
	}
	return verdict, nil
}
