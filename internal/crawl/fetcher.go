package crawl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxBodyBytes caps how much of a response body is read into memory.
const maxBodyBytes = 4 << 20

// Result is one completed fetch.
type Result struct {
	URL         string
	Status      int
	ContentType string
	Headers     http.Header
	Body        []byte
}

// Fetcher retrieves pages with a fixed user agent and timeout.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher builds a fetcher. A zero timeout disables the client deadline.
func NewFetcher(userAgent string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Fetch retrieves url and returns the response status and body. Non-2xx
// statuses are results, not errors; only transport failures return an error.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %q: %w", url, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %q: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body of %q: %w", url, err)
	}

	return &Result{
		URL:         url,
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Headers:     resp.Header.Clone(),
		Body:        body,
	}, nil
}
