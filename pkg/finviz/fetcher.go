package finviz

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrFetch marks transport-level failures: the page could not be retrieved
// at all. Callers treat every fetch failure uniformly via errors.Is.
var ErrFetch = errors.New("finviz: fetch failed")

// Fetcher retrieves the raw screener page over HTTP.
type Fetcher struct {
	url        string
	userAgent  string
	httpClient *http.Client
}

func NewFetcher(url, userAgent string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		url:        url,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (f *Fetcher) HTTPClient() *http.Client {
	return f.httpClient
}

// Fetch downloads the screener page and returns the raw HTML.
// The screener rejects requests without a browser-like User-Agent, so one is
// always set.
func (f *Fetcher) Fetch(ctx context.Context) (string, error) {
	// Construct the GET request with context for timeout/cancel support
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: creating request: %w", ErrFetch, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html")

	// Execute the HTTP request
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: making request: %w", ErrFetch, err)
	}
	defer resp.Body.Close()

	// Check HTTP status code
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%w: status %d: %s", ErrFetch, resp.StatusCode, body)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %w", ErrFetch, err)
	}

	return string(body), nil
}
