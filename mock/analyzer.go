package mock

import (
	"context"

	"github.com/jswierad/contentlens"
)

var _ contentlens.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of contentlens.Analyzer.
type Analyzer struct {
	AnalyzeFn func(ctx context.Context, input contentlens.AnalysisInput) (*contentlens.AnalysisPayload, error)
}

func (a *Analyzer) Analyze(ctx context.Context, input contentlens.AnalysisInput) (*contentlens.AnalysisPayload, error) {
	return a.AnalyzeFn(ctx, input)
}
