package contentlens

import (
	"context"
	"time"
)

// AnalysisRecord is a persisted analysis outcome.
type AnalysisRecord struct {
	ID                    string    `json:"id"`
	URL                   string    `json:"url"`
	Status                string    `json:"status"`
	PrimaryCategory       string    `json:"primaryCategory"`
	QualityScore          float64   `json:"qualityScore"`
	Summary               string    `json:"summary"`
	Result                string    `json:"result"` // full AnalysisResult as JSON
	ContentHash           string    `json:"contentHash"`
	ProcessingTimeSeconds float64   `json:"processingTimeSeconds"`
	CreatedAt             time.Time `json:"createdAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *AnalysisRecord) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "analysis record URL required")
	}
	if r.Status == "" {
		return Errorf(EINVALID, "analysis record status required")
	}
	return nil
}

// AnalysisFilter selects records for FindAnalyses.
type AnalysisFilter struct {
	URL    *string `json:"url"`
	Status *string `json:"status"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// AnalysisStore persists analysis outcomes for later inspection.
type AnalysisStore interface {
	// SaveAnalysis stores a record, assigning its ID and timestamp.
	SaveAnalysis(ctx context.Context, rec *AnalysisRecord) error

	// FindAnalyses retrieves records matching the filter, newest first.
	FindAnalyses(ctx context.Context, filter AnalysisFilter) ([]*AnalysisRecord, error)

	// DeleteAnalysesByURL removes all records for a URL. Returns the
	// number of records removed.
	DeleteAnalysesByURL(ctx context.Context, url string) (int, error)
}
