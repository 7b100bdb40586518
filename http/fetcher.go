// Package http provides the HTTP-based implementation of
// contentlens.Fetcher. It performs direct GET requests with a
// browser-realistic header set, retries rate-limited responses with
// exponential backoff, and optionally routes fetches through a
// fetch-proxy service with silent fallback to direct fetching.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jswierad/contentlens"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default per-attempt timeout.
const DefaultFetchTimeout = 30 * time.Second

// DefaultRetryInterval is the base backoff interval after a 429. The
// second retry waits twice as long.
const DefaultRetryInterval = 1 * time.Second

// DefaultMaxRetries is the number of retries after a rate-limited
// attempt (3 total attempts).
const DefaultMaxRetries = 2

// DefaultUserAgent mimics a desktop browser. Many sites serve reduced
// or blocked content to obvious bot agents.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Ensure Fetcher implements contentlens.Fetcher at compile time.
var _ contentlens.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content over HTTP.
type Fetcher struct {
	client        *http.Client
	proxy         *ProxyClient
	timeout       time.Duration
	retryInterval time.Duration
	maxRetries    uint64
	userAgent     string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-attempt fetch timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithRetryInterval sets the base backoff interval for 429 retries.
// Useful in tests to avoid real delays.
func WithRetryInterval(d time.Duration) Option {
	return func(f *Fetcher) {
		f.retryInterval = d
	}
}

// WithProxy routes fetches through a fetch-proxy service. Proxy
// failures fall back to direct fetching without surfacing an error.
func WithProxy(p *ProxyClient) Option {
	return func(f *Fetcher) {
		f.proxy = p
	}
}

// NewFetcher creates a new HTTP Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:       DefaultFetchTimeout,
		retryInterval: DefaultRetryInterval,
		maxRetries:    DefaultMaxRetries,
		userAgent:     DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	// No client-level timeout: each attempt gets its own deadline so
	// retries are not charged for earlier attempts.
	f.client = &http.Client{}

	return f
}

// Fetch retrieves the HTML content of rawURL. All failure paths
// produce a tagged FetchResult; Fetch never reports failure through a
// Go error.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) *contentlens.FetchResult {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return &contentlens.FetchResult{
			URL: rawURL,
			Err: contentlens.Errorf(contentlens.EINVALID, "invalid URL format: %s", rawURL),
		}
	}

	if f.proxy != nil {
		if result, err := f.proxy.Fetch(ctx, rawURL); err == nil {
			return result
		}
		// Fall through to direct fetch on any proxy failure.
	}

	return f.fetchDirect(ctx, rawURL)
}

// fetchDirect performs the GET with 429 retry. Only rate-limited
// responses are retried; every other failure is permanent.
func (f *Fetcher) fetchDirect(ctx context.Context, rawURL string) *contentlens.FetchResult {
	var result *contentlens.FetchResult
	rateLimited := false

	attempt := func() error {
		res, retryable := f.attempt(ctx, rawURL)
		result = res
		if res.Err == nil {
			return nil
		}
		if retryable {
			rateLimited = true
			return res.Err
		}
		return backoff.Permanent(res.Err)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = f.retryInterval
	b.Multiplier = 2
	b.RandomizationFactor = 0

	bo := backoff.WithContext(backoff.WithMaxRetries(b, f.maxRetries), ctx)
	if err := backoff.Retry(attempt, bo); err != nil && result == nil {
		// Context expired before the first attempt ran.
		result = &contentlens.FetchResult{
			URL: rawURL,
			Err: contentlens.Errorf(contentlens.EUNAVAILABLE, "fetch canceled: %v", err),
		}
	}

	if result.Err != nil && rateLimited {
		result.Err = contentlens.Errorf(contentlens.ERATELIMITED, "%s", contentlens.ErrorMessage(result.Err))
	}

	return result
}

// attempt performs a single GET. The second return value reports
// whether the failure is retryable (HTTP 429).
func (f *Fetcher) attempt(ctx context.Context, rawURL string) (*contentlens.FetchResult, bool) {
	failure := func(code, format string, args ...any) *contentlens.FetchResult {
		return &contentlens.FetchResult{URL: rawURL, Err: contentlens.Errorf(code, format, args...)}
	}

	attemptCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return failure(contentlens.EINVALID, "invalid request for %s: %v", rawURL, err), false
	}
	f.setHeaders(req)

	resp, err := f.client.Do(req)
	if err != nil {
		return failure(contentlens.EUNAVAILABLE, "fetch failed for %s: %v", rawURL, err), false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return failure(contentlens.EUNAVAILABLE, "%s", statusMessage(resp.StatusCode)), resp.StatusCode == http.StatusTooManyRequests
	}

	// Decode to UTF-8 based on the declared charset.
	reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return failure(contentlens.EDECODE, "failed to decode response body for %s: %v", rawURL, err), false
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return failure(contentlens.EDECODE, "failed to read response body for %s: %v", rawURL, err), false
	}

	finalURL := rawURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &contentlens.FetchResult{
		URL:  rawURL,
		HTML: string(body),
		Metadata: contentlens.FetchMetadata{
			FinalURL:      finalURL,
			StatusCode:    resp.StatusCode,
			ContentType:   resp.Header.Get("Content-Type"),
			ContentLength: len(body),
			Server:        resp.Header.Get("Server"),
			LastModified:  resp.Header.Get("Last-Modified"),
			Source:        "direct_fetch",
		},
	}, false
}

func (f *Fetcher) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,image/apng,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
	req.Header.Set("Cache-Control", "max-age=0")
}

// statusMessage maps common failure statuses to human-readable reasons.
func statusMessage(status int) string {
	switch status {
	case http.StatusForbidden:
		return "HTTP 403: Forbidden - Website blocked automated access"
	case http.StatusNotFound:
		return "HTTP 404: Not Found - URL does not exist"
	case http.StatusTooManyRequests:
		return "HTTP 429: Too Many Requests - Rate limited"
	case http.StatusInternalServerError:
		return "HTTP 500: Server Error - Website experiencing issues"
	case http.StatusServiceUnavailable:
		return "HTTP 503: Service Unavailable - Website temporarily down"
	}
	return fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))
}

// Close releases resources. The underlying http.Client does not
// require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
