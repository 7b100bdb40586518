package mock

import (
	"context"

	"github.com/jswierad/contentlens"
)

var _ contentlens.AnalysisStore = (*AnalysisStore)(nil)

// AnalysisStore is a mock implementation of contentlens.AnalysisStore.
type AnalysisStore struct {
	SaveAnalysisFn        func(ctx context.Context, record *contentlens.AnalysisRecord) error
	FindAnalysesFn        func(ctx context.Context, filter contentlens.AnalysisFilter) ([]*contentlens.AnalysisRecord, error)
	DeleteAnalysesByURLFn func(ctx context.Context, url string) (int, error)
}

func (s *AnalysisStore) SaveAnalysis(ctx context.Context, record *contentlens.AnalysisRecord) error {
	return s.SaveAnalysisFn(ctx, record)
}

func (s *AnalysisStore) FindAnalyses(ctx context.Context, filter contentlens.AnalysisFilter) ([]*contentlens.AnalysisRecord, error) {
	return s.FindAnalysesFn(ctx, filter)
}

func (s *AnalysisStore) DeleteAnalysesByURL(ctx context.Context, url string) (int, error) {
	return s.DeleteAnalysesByURLFn(ctx, url)
}
