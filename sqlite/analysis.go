package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jswierad/contentlens"
)

// Compile-time interface verification.
var _ contentlens.AnalysisStore = (*AnalysisStore)(nil)

// AnalysisStore implements contentlens.AnalysisStore using SQLite.
type AnalysisStore struct {
	db *DB
}

// NewAnalysisStore creates a new AnalysisStore.
func NewAnalysisStore(db *DB) *AnalysisStore {
	return &AnalysisStore{db: db}
}

// SaveAnalysis stores a record, assigning its ID and creation time.
func (s *AnalysisStore) SaveAnalysis(ctx context.Context, rec *contentlens.AnalysisRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	rec.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO analyses (id, url, status, primary_category, quality_score, summary, result, content_hash, processing_time_seconds, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.URL, rec.Status, rec.PrimaryCategory, rec.QualityScore, rec.Summary,
		rec.Result, rec.ContentHash, rec.ProcessingTimeSeconds, rec.CreatedAt.Format(time.RFC3339))

	return err
}

// FindAnalyses retrieves records matching the filter, newest first.
func (s *AnalysisStore) FindAnalyses(ctx context.Context, filter contentlens.AnalysisFilter) ([]*contentlens.AnalysisRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, status, primary_category, quality_score, summary, result, content_hash, processing_time_seconds, created_at FROM analyses WHERE 1=1")

	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, *filter.Status)
	}

	query.WriteString(" ORDER BY created_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*contentlens.AnalysisRecord
	for rows.Next() {
		var rec contentlens.AnalysisRecord
		var createdAt string

		if err := rows.Scan(&rec.ID, &rec.URL, &rec.Status, &rec.PrimaryCategory, &rec.QualityScore,
			&rec.Summary, &rec.Result, &rec.ContentHash, &rec.ProcessingTimeSeconds, &createdAt); err != nil {
			return nil, err
		}

		var parseErr error
		rec.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAt)
		if parseErr != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", parseErr)
		}

		recs = append(recs, &rec)
	}

	return recs, rows.Err()
}

// DeleteAnalysesByURL removes all records for a URL and reports how
// many were removed.
func (s *AnalysisStore) DeleteAnalysesByURL(ctx context.Context, url string) (int, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM analyses WHERE url = ?", url)
	if err != nil {
		return 0, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return int(rows), nil
}
