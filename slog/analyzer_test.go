package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jswierad/contentlens"
	"github.com/jswierad/contentlens/mock"
	lensslog "github.com/jswierad/contentlens/slog"
)

func TestLoggingAnalyzer_Analyze(t *testing.T) {
	t.Parallel()

	t.Run("logs category and duration on success", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Analyzer{
			AnalyzeFn: func(ctx context.Context, input contentlens.AnalysisInput) (*contentlens.AnalysisPayload, error) {
				p := &contentlens.AnalysisPayload{PrimaryCategory: "news"}
				p.Normalize()
				return p, nil
			},
		}

		analyzer := lensslog.NewLoggingAnalyzer(inner, logger)
		payload, err := analyzer.Analyze(context.Background(), contentlens.AnalysisInput{
			URL:   "https://example.com/article",
			Text:  "some text",
			Depth: contentlens.DepthBasic,
		})

		require.NoError(t, err)
		assert.Equal(t, "news", payload.PrimaryCategory)
		output := buf.String()
		assert.Contains(t, output, "analysis")
		assert.Contains(t, output, "url=https://example.com/article")
		assert.Contains(t, output, "depth=basic")
		assert.Contains(t, output, "chars=9")
		assert.Contains(t, output, "category=news")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Analyzer{
			AnalyzeFn: func(ctx context.Context, input contentlens.AnalysisInput) (*contentlens.AnalysisPayload, error) {
				return nil, contentlens.Errorf(contentlens.EUNAVAILABLE, "endpoint unreachable")
			},
		}

		analyzer := lensslog.NewLoggingAnalyzer(inner, logger)
		_, err := analyzer.Analyze(context.Background(), contentlens.AnalysisInput{URL: "https://example.com"})

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "analysis")
		assert.Contains(t, output, "endpoint unreachable")
	})
}
