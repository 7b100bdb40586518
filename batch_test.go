package contentlens_test

import (
	"testing"

	"github.com/jswierad/contentlens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBatchReport(t *testing.T) {
	t.Parallel()

	t.Run("partitions by status and preserves order", func(t *testing.T) {
		t.Parallel()

		results := []*contentlens.AnalysisResult{
			{URL: "https://a.example", Status: contentlens.StatusSuccess, PrimaryCategory: "news", QualityScore: 0.8, ProcessingTimeSeconds: 1.5},
			{URL: "https://b.example", Status: contentlens.StatusError, Summary: "Analysis failed: HTTP 404: Not Found - URL does not exist", ProcessingTimeSeconds: 0.2},
			{URL: "https://c.example", Status: contentlens.StatusSuccess, PrimaryCategory: "news", QualityScore: 0.6, ProcessingTimeSeconds: 2.3},
		}

		report := contentlens.BuildBatchReport(results)

		assert.Equal(t, 3, report.TotalURLs)
		assert.Equal(t, 2, report.Succeeded)
		assert.Equal(t, 1, report.Failed)
		assert.Equal(t, report.TotalURLs, report.Succeeded+report.Failed)
		require.Len(t, report.Results, 3)
		assert.Equal(t, "https://a.example", report.Results[0].URL)
		assert.Equal(t, "https://b.example", report.Results[1].URL)
		assert.Equal(t, map[string]int{"news": 2}, report.CategoryDistribution)
		require.NotNil(t, report.AverageQualityScore)
		assert.InDelta(t, 0.7, *report.AverageQualityScore, 1e-9)
		assert.InDelta(t, 4.0, report.TotalProcessingTimeSeconds, 1e-9)
		require.Len(t, report.Errors, 1)
		assert.Equal(t, "https://b.example", report.Errors[0].URL)
		assert.Contains(t, report.Errors[0].Error, "Not Found")
	})

	t.Run("no successes leaves average unset", func(t *testing.T) {
		t.Parallel()

		results := []*contentlens.AnalysisResult{
			{URL: "https://a.example", Status: contentlens.StatusError, Summary: "Analysis failed: boom"},
		}

		report := contentlens.BuildBatchReport(results)

		assert.Equal(t, 1, report.Failed)
		assert.Nil(t, report.AverageQualityScore)
		assert.Empty(t, report.CategoryDistribution)
	})

	t.Run("partial errors count as failures", func(t *testing.T) {
		t.Parallel()

		results := []*contentlens.AnalysisResult{
			{URL: "https://a.example", Status: contentlens.StatusPartialError, Summary: "Analysis completed with errors"},
		}

		report := contentlens.BuildBatchReport(results)

		assert.Equal(t, 0, report.Succeeded)
		assert.Equal(t, 1, report.Failed)
	})

	t.Run("empty batch", func(t *testing.T) {
		t.Parallel()

		report := contentlens.BuildBatchReport(nil)

		assert.Zero(t, report.TotalURLs)
		assert.Nil(t, report.AverageQualityScore)
	})
}
