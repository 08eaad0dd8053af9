package news

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"stamble/internal/logger"
	"stamble/internal/types"
)

// Scraper fetches headlines for a symbol from Yahoo Finance. Used in
// LIVE mode. A fresh call may return different content; there is no
// pagination and an empty result is not an error.
type Scraper struct {
	timeout time.Duration
	now     func() time.Time
}

func NewScraper(timeout time.Duration) *Scraper {
	return &Scraper{timeout: timeout, now: time.Now}
}

func (s *Scraper) GetNews(ctx context.Context, symbol string, maxItems int) ([]types.NewsItem, error) {
	logger.Info(ctx, "Scraping news", "symbol", symbol, "max_items", maxItems)

	items := []types.NewsItem{}

	c := colly.NewCollector(
		colly.AllowedDomains("finance.yahoo.com"),
		colly.MaxDepth(1),
	)
	c.SetRequestTimeout(s.timeout)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	})

	// Story cards on the quote news stream.
	c.OnHTML("li.stream-item, li.js-stream-content", func(e *colly.HTMLElement) {
		if len(items) >= maxItems {
			return
		}

		title := strings.TrimSpace(e.ChildText("h3"))
		if title == "" {
			return
		}

		summary := strings.TrimSpace(e.ChildText("p"))
		source := strings.TrimSpace(e.ChildText("div.publishing"))
		if i := strings.Index(source, "•"); i > 0 {
			source = strings.TrimSpace(source[:i])
		}
		if source == "" {
			source = "Yahoo Finance"
		}

		if summary == "" {
			if href := e.ChildAttr("a", "href"); href != "" {
				summary = s.fetchArticleSummary(ctx, e.Request.AbsoluteURL(href))
			}
		}

		items = append(items, types.NewsItem{
			Title:     title,
			Source:    source,
			Date:      s.now(),
			Summary:   summary,
			Sentiment: LabelHeadline(title, summary),
		})
	})

	c.OnError(func(r *colly.Response, err error) {
		logger.ErrorWithErr(ctx, "Scraping error", err, "symbol", symbol, "url", r.Request.URL.String())
	})

	url := fmt.Sprintf("https://finance.yahoo.com/quote/%s/news", strings.ToUpper(symbol))
	if err := c.Visit(url); err != nil {
		return nil, fmt.Errorf("failed to visit %s: %w", url, err)
	}
	c.Wait()

	logger.Info(ctx, "Scraping completed", "symbol", symbol, "articles", len(items))
	return items, nil
}

// fetchArticleSummary pulls the meta description (or first paragraph)
// from an article page when the stream card had no blurb.
func (s *Scraper) fetchArticleSummary(ctx context.Context, articleURL string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, articleURL, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	client := &http.Client{Timeout: s.timeout}
	resp, err := client.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return ""
	}

	if desc, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok && desc != "" {
		return strings.TrimSpace(desc)
	}

	summary := ""
	doc.Find("article p, div.caas-body p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if len(text) > 40 {
			summary = text
			return false
		}
		return true
	})
	return summary
}
