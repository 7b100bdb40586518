package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jswierad/contentlens"
)

// Ensure LoggingAnalyzer implements contentlens.Analyzer.
var _ contentlens.Analyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps an Analyzer with per-call logging.
type LoggingAnalyzer struct {
	next   contentlens.Analyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next contentlens.Analyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Analyze delegates to the wrapped analyzer and logs the operation.
func (a *LoggingAnalyzer) Analyze(ctx context.Context, input contentlens.AnalysisInput) (payload *contentlens.AnalysisPayload, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", input.URL,
			"depth", string(input.Depth),
			"chars", len(input.Text),
			"duration", time.Since(begin),
			"err", err,
		}
		if payload != nil {
			attrs = append(attrs, "category", payload.PrimaryCategory, "partial", payload.Partial)
		}
		a.logger.Info("analysis", attrs...)
	}(time.Now())
	return a.next.Analyze(ctx, input)
}
