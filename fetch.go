package contentlens

import "context"

// FetchMetadata holds transport-level details of a completed fetch.
// Title and Description are only populated when the content came
// through a fetch proxy that pre-extracts them.
type FetchMetadata struct {
	FinalURL      string `json:"finalUrl"`
	StatusCode    int    `json:"statusCode"`
	ContentType   string `json:"contentType"`
	ContentLength int    `json:"contentLength"`
	Server        string `json:"server,omitempty"`
	LastModified  string `json:"lastModified,omitempty"`
	Title         string `json:"title,omitempty"`
	Description   string `json:"description,omitempty"`

	// Source records which path produced the content:
	// "direct_fetch" or "proxy".
	Source string `json:"source"`
}

// FetchResult is the tagged outcome of one URL retrieval. A failed
// fetch carries an empty HTML body and a non-nil Err; it is a value,
// not a Go error, so one bad URL never aborts a batch.
type FetchResult struct {
	URL      string
	HTML     string
	Metadata FetchMetadata
	Err      error
}

// Failed reports whether the fetch ended in a failure outcome.
func (r *FetchResult) Failed() bool {
	return r.Err != nil
}

// Fetcher retrieves raw HTML from URLs.
//
// Implementations never return transport failures as Go errors: every
// failure path yields a FetchResult with Err populated and an error
// code attached (EINVALID for malformed URLs, ERATELIMITED after
// exhausted 429 retries, EUNAVAILABLE for everything else).
type Fetcher interface {
	// Fetch retrieves the HTML content of url. The context bounds each
	// network attempt; 429 responses are retried internally.
	Fetch(ctx context.Context, url string) *FetchResult

	// Close releases transport resources.
	Close() error
}

// DomainLimiter throttles outbound requests per domain.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	Wait(ctx context.Context, domain string) error
}
