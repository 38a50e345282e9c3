package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"trawl/internal/cache"
	"trawl/internal/project"
)

// Summary reports what one crawl accomplished.
type Summary struct {
	Fetched int
	Failed  int
	Skipped int
}

// Engine drives a breadth-first crawl of one spider into the page cache.
type Engine struct {
	fetcher *Fetcher
	store   *cache.Store
	logger  *slog.Logger
}

// NewEngine wires a fetcher and cache store together. A nil logger disables
// crawl logging.
func NewEngine(fetcher *Fetcher, store *cache.Store, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{fetcher: fetcher, store: store, logger: logger}
}

type frontierItem struct {
	url   string
	depth int
}

// Run crawls spider until the frontier is exhausted or maxDepth is reached.
// A maxDepth below zero falls back to the spider's own limit. Fetch failures
// are counted, logged, and skipped; only cache write failures abort the run.
func (e *Engine) Run(ctx context.Context, spider project.Spider, maxDepth int) (Summary, error) {
	if maxDepth < 0 {
		maxDepth = spider.MaxDepth
	}

	var summary Summary
	seen := make(map[string]struct{})
	frontier := make([]frontierItem, 0, len(spider.StartURLs))
	for _, raw := range spider.StartURLs {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if _, dup := seen[raw]; dup {
			continue
		}
		seen[raw] = struct{}{}
		frontier = append(frontier, frontierItem{url: raw})
	}

	for len(frontier) > 0 {
		item := frontier[0]
		frontier = frontier[1:]

		if err := ctx.Err(); err != nil {
			return summary, err
		}

		parsed, err := url.Parse(item.url)
		if err != nil || !inScope(parsed.Hostname(), spider.AllowedDomains) {
			summary.Skipped++
			continue
		}

		result, err := e.fetcher.Fetch(ctx, item.url)
		if err != nil {
			summary.Failed++
			e.logger.Warn("fetch failed", "spider", spider.Name, "url", item.url, "error", err)
			continue
		}
		summary.Fetched++
		e.logger.Info("fetched page",
			"spider", spider.Name,
			"url", item.url,
			"status", result.Status,
			"depth", item.depth,
			"bytes", len(result.Body))

		page := cache.Page{
			URL:       result.URL,
			Status:    result.Status,
			Body:      result.Body,
			Depth:     item.depth,
			FetchedAt: time.Now().UTC(),
		}
		if err := e.store.Put(ctx, page); err != nil {
			return summary, fmt.Errorf("cache page: %w", err)
		}

		if item.depth >= maxDepth || !isHTML(result.ContentType) {
			continue
		}
		for _, link := range extractLinks(parsed, result.Body) {
			if _, dup := seen[link]; dup {
				continue
			}
			seen[link] = struct{}{}
			frontier = append(frontier, frontierItem{url: link, depth: item.depth + 1})
		}
	}

	return summary, nil
}

func isHTML(contentType string) bool {
	contentType = strings.ToLower(contentType)
	return strings.Contains(contentType, "text/html") ||
		strings.Contains(contentType, "application/xhtml")
}
