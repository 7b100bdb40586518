package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jswierad/contentlens"
	"github.com/jswierad/contentlens/sqlite"
)

func testRecord(url string) *contentlens.AnalysisRecord {
	return &contentlens.AnalysisRecord{
		URL:                   url,
		Status:                contentlens.StatusSuccess,
		PrimaryCategory:       "technology",
		QualityScore:          0.8,
		Summary:               "A summary.",
		Result:                `{"url":"` + url + `"}`,
		ContentHash:           "deadbeefdeadbeef",
		ProcessingTimeSeconds: 1.5,
	}
}

func TestAnalysisStore_SaveAnalysis(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewAnalysisStore(db)
		ctx := context.Background()

		rec := testRecord("https://example.com/a")
		require.NoError(t, store.SaveAnalysis(ctx, rec))

		assert.NotEmpty(t, rec.ID, "ID should be generated")
		assert.False(t, rec.CreatedAt.IsZero(), "CreatedAt should be set")
	})

	t.Run("returns error for invalid record", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewAnalysisStore(db)
		ctx := context.Background()

		err := store.SaveAnalysis(ctx, &contentlens.AnalysisRecord{})
		require.Error(t, err)
		assert.Equal(t, contentlens.EINVALID, contentlens.ErrorCode(err))
	})
}

func TestAnalysisStore_FindAnalyses(t *testing.T) {
	t.Parallel()

	t.Run("round-trips all fields", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewAnalysisStore(db)
		ctx := context.Background()

		rec := testRecord("https://example.com/a")
		require.NoError(t, store.SaveAnalysis(ctx, rec))

		found, err := store.FindAnalyses(ctx, contentlens.AnalysisFilter{})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, rec.ID, found[0].ID)
		assert.Equal(t, rec.URL, found[0].URL)
		assert.Equal(t, rec.Status, found[0].Status)
		assert.Equal(t, rec.PrimaryCategory, found[0].PrimaryCategory)
		assert.Equal(t, rec.QualityScore, found[0].QualityScore)
		assert.Equal(t, rec.Summary, found[0].Summary)
		assert.Equal(t, rec.Result, found[0].Result)
		assert.Equal(t, rec.ContentHash, found[0].ContentHash)
		assert.Equal(t, rec.ProcessingTimeSeconds, found[0].ProcessingTimeSeconds)
	})

	t.Run("filters by URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewAnalysisStore(db)
		ctx := context.Background()

		require.NoError(t, store.SaveAnalysis(ctx, testRecord("https://example.com/a")))
		require.NoError(t, store.SaveAnalysis(ctx, testRecord("https://example.com/b")))

		url := "https://example.com/b"
		found, err := store.FindAnalyses(ctx, contentlens.AnalysisFilter{URL: &url})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, url, found[0].URL)
	})

	t.Run("filters by status", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewAnalysisStore(db)
		ctx := context.Background()

		ok := testRecord("https://example.com/a")
		require.NoError(t, store.SaveAnalysis(ctx, ok))

		failed := testRecord("https://example.com/b")
		failed.Status = contentlens.StatusError
		require.NoError(t, store.SaveAnalysis(ctx, failed))

		status := contentlens.StatusError
		found, err := store.FindAnalyses(ctx, contentlens.AnalysisFilter{Status: &status})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "https://example.com/b", found[0].URL)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewAnalysisStore(db)
		ctx := context.Background()

		for i := 0; i < 5; i++ {
			require.NoError(t, store.SaveAnalysis(ctx, testRecord(fmt.Sprintf("https://example.com/%d", i))))
		}

		found, err := store.FindAnalyses(ctx, contentlens.AnalysisFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})
}

func TestAnalysisStore_DeleteAnalysesByURL(t *testing.T) {
	t.Parallel()

	t.Run("removes matching records and reports count", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewAnalysisStore(db)
		ctx := context.Background()

		require.NoError(t, store.SaveAnalysis(ctx, testRecord("https://example.com/a")))
		require.NoError(t, store.SaveAnalysis(ctx, testRecord("https://example.com/a")))
		require.NoError(t, store.SaveAnalysis(ctx, testRecord("https://example.com/b")))

		n, err := store.DeleteAnalysesByURL(ctx, "https://example.com/a")
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		found, err := store.FindAnalyses(ctx, contentlens.AnalysisFilter{})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "https://example.com/b", found[0].URL)
	})

	t.Run("returns zero when nothing matches", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewAnalysisStore(db)
		ctx := context.Background()

		n, err := store.DeleteAnalysesByURL(ctx, "https://example.com/none")
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}
