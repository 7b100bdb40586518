// Package slog provides logging decorators for contentlens services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jswierad/contentlens"
)

// Ensure LoggingFetcher implements contentlens.Fetcher.
var _ contentlens.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with per-request logging.
type LoggingFetcher struct {
	next   contentlens.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next contentlens.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) *contentlens.FetchResult {
	begin := time.Now()
	result := f.next.Fetch(ctx, url)
	f.logger.Info("fetch",
		"url", url,
		"status", result.Metadata.StatusCode,
		"source", result.Metadata.Source,
		"bytes", len(result.HTML),
		"duration", time.Since(begin),
		"err", result.Err,
	)
	return result
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
