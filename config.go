package contentlens

import "time"

// Configuration defaults.
const (
	DefaultFetchTimeout     = 30 * time.Second
	DefaultMaxContentLength = 50000
	DefaultMaxBatchSize     = 10
	DefaultMaxConcurrent    = 5

	// MaxConcurrentLimit is the hard upper bound on in-flight
	// pipelines regardless of what the caller asks for.
	MaxConcurrentLimit = 10
)

// Config holds the recognized runtime options. It is constructed
// explicitly and injected into each component; nothing reads
// process-wide state after startup.
type Config struct {
	// Endpoint is the base URL of the OpenAI-compatible chat
	// completions service (e.g. an Azure OpenAI deployment).
	Endpoint string

	// APIKey authenticates against the chat completions service.
	APIKey string

	// Model is the model or deployment name to request.
	Model string

	// ProxyURL, when set, routes fetches through a fetch-proxy
	// service. Any proxy failure falls back to a direct GET.
	ProxyURL string

	// FetchTimeout bounds each individual fetch attempt. Retries
	// after a 429 each get a fresh timeout.
	FetchTimeout time.Duration

	// MaxContentLength is the number of characters of cleaned text
	// submitted for analysis; longer text is truncated with a marker.
	MaxContentLength int

	// MaxBatchSize caps the number of URLs accepted per batch.
	MaxBatchSize int

	// MaxConcurrent is the default concurrency for parallel batches.
	MaxConcurrent int

	// BatchTimeout is carried for compatibility with the service
	// configuration surface. No hard batch cutoff is enforced; each
	// pipeline runs to a terminal state under its own fetch timeouts.
	BatchTimeout time.Duration
}

// DefaultConfig returns a Config with the documented defaults. The
// endpoint, API key and model must still be set by the caller.
func DefaultConfig() Config {
	return Config{
		FetchTimeout:     DefaultFetchTimeout,
		MaxContentLength: DefaultMaxContentLength,
		MaxBatchSize:     DefaultMaxBatchSize,
		MaxConcurrent:    DefaultMaxConcurrent,
		BatchTimeout:     5 * time.Minute,
	}
}

// ClampConcurrency normalizes a requested concurrency to the allowed
// range: zero or negative falls back to the configured default, and
// everything is clamped to [1, MaxConcurrentLimit].
func (c Config) ClampConcurrency(requested int) int {
	n := requested
	if n <= 0 {
		n = c.MaxConcurrent
	}
	if n <= 0 {
		n = DefaultMaxConcurrent
	}
	if n > MaxConcurrentLimit {
		n = MaxConcurrentLimit
	}
	return n
}
