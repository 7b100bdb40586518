// Package analysis provides the batch analysis engine. It drives the
// fetch, extract and analyze stages for each URL, bounds concurrent
// pipelines, isolates per-URL failures, and guarantees exactly one
// terminal result per requested URL.
package analysis

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/url"
	"time"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"github.com/jswierad/contentlens"
)

// Engine orchestrates content analysis pipelines.
type Engine struct {
	Fetcher   contentlens.Fetcher
	Extractor contentlens.Extractor
	Analyzer  contentlens.Analyzer

	// RateLimiter, when set, is awaited per target domain before each
	// fetch.
	RateLimiter contentlens.DomainLimiter

	// Store, when set, records every terminal result. Store failures
	// are logged and never fail the pipeline.
	Store contentlens.AnalysisStore

	// Logger receives pipeline events. Nil disables logging.
	Logger *slog.Logger

	Config contentlens.Config
}

// AnalyzeURL runs the full pipeline for a single URL and always
// returns a terminal result: any failure at any stage is converted
// into a result with status "error" carrying the reason. It never
// returns an error and never panics past its boundary.
func (e *Engine) AnalyzeURL(ctx context.Context, req *contentlens.AnalysisRequest) *contentlens.AnalysisResult {
	start := time.Now()

	if err := req.Validate(); err != nil {
		return e.finish(ctx, errorResult(req.URL, contentlens.ErrorMessage(err), start), "")
	}

	if e.RateLimiter != nil {
		if err := e.RateLimiter.Wait(ctx, domainOf(req.URL)); err != nil {
			return e.finish(ctx, errorResult(req.URL, "rate limit wait canceled: "+err.Error(), start), "")
		}
	}

	fetched := e.Fetcher.Fetch(ctx, req.URL)
	if fetched.Failed() {
		reason := "Failed to fetch content: " + contentlens.ErrorMessage(fetched.Err)
		return e.finish(ctx, errorResult(req.URL, reason, start), "")
	}

	text := e.Extractor.ExtractText(fetched.HTML)

	var meta *contentlens.ContentMetadata
	if req.IncludeMetadata {
		meta = e.Extractor.ExtractMetadata(fetched.HTML, fetched.Metadata)
	}

	payload, err := e.Analyzer.Analyze(ctx, contentlens.AnalysisInput{
		Text:             text,
		URL:              req.URL,
		Metadata:         meta,
		Depth:            req.Depth,
		CustomCategories: req.CustomCategories,
	})
	if err != nil {
		result := errorResult(req.URL, contentlens.ErrorMessage(err), start)
		result.Metadata = meta
		return e.finish(ctx, result, hashContent(text))
	}

	result := buildResult(req.URL, payload, meta, start)
	return e.finish(ctx, result, hashContent(text))
}

// AnalyzeBatch runs the pipeline for every URL. Results align with
// the input order regardless of completion order; one URL's failure
// never prevents another URL's pipeline from running to completion.
func (e *Engine) AnalyzeBatch(ctx context.Context, batch *contentlens.BatchRequest) []*contentlens.AnalysisResult {
	results := make([]*contentlens.AnalysisResult, len(batch.URLs))

	request := func(u string) *contentlens.AnalysisRequest {
		return &contentlens.AnalysisRequest{
			URL:              u,
			Depth:            batch.Depth,
			IncludeMetadata:  batch.IncludeMetadata,
			CustomCategories: batch.CustomCategories,
		}
	}

	if !batch.Parallel {
		for i, u := range batch.URLs {
			results[i] = e.AnalyzeURL(ctx, request(u))
		}
		return results
	}

	concurrency := e.Config.ClampConcurrency(batch.MaxConcurrent)

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, u := range batch.URLs {
		g.Go(func() error {
			results[i] = e.AnalyzeURL(ctx, request(u))
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// finish records the result in the store, logs the outcome, and hands
// the result back.
func (e *Engine) finish(ctx context.Context, result *contentlens.AnalysisResult, contentHash string) *contentlens.AnalysisResult {
	if e.Logger != nil {
		e.Logger.Info("analysis finished",
			"url", result.URL,
			"status", result.Status,
			"category", result.PrimaryCategory,
			"duration", time.Duration(result.ProcessingTimeSeconds*float64(time.Second)),
		)
	}

	if e.Store != nil {
		encoded, err := json.Marshal(result)
		if err == nil {
			err = e.Store.SaveAnalysis(ctx, &contentlens.AnalysisRecord{
				URL:                   result.URL,
				Status:                result.Status,
				PrimaryCategory:       result.PrimaryCategory,
				QualityScore:          result.QualityScore,
				Summary:               result.Summary,
				Result:                string(encoded),
				ContentHash:           contentHash,
				ProcessingTimeSeconds: result.ProcessingTimeSeconds,
			})
		}
		if err != nil && e.Logger != nil {
			e.Logger.Warn("failed to record analysis", "url", result.URL, "error", err)
		}
	}

	return result
}

// buildResult maps a decoded payload onto the terminal result. A
// payload salvaged from a malformed reply yields partial_error.
func buildResult(u string, payload *contentlens.AnalysisPayload, meta *contentlens.ContentMetadata, start time.Time) *contentlens.AnalysisResult {
	status := contentlens.StatusSuccess
	if payload.Partial {
		status = contentlens.StatusPartialError
	}

	entities := make([]contentlens.Entity, 0, len(payload.SemanticAnalysis.Entities))
	for _, ent := range payload.SemanticAnalysis.Entities {
		entities = append(entities, contentlens.Entity{
			Name:      ent.Name,
			Type:      ent.Type,
			Relevance: ent.Relevance,
		})
	}

	return &contentlens.AnalysisResult{
		URL:                 u,
		Status:              status,
		PrimaryCategory:     payload.PrimaryCategory,
		SecondaryCategories: payload.SecondaryCategories,
		CategoryConfidence:  payload.CategoryConfidence,
		Summary:             payload.ContentSummary,
		KeyInsights:         payload.KeyInsights,
		Semantic: contentlens.SemanticAnalysis{
			MainTopics: payload.SemanticAnalysis.MainTopics,
			Entities:   entities,
			Themes:     payload.SemanticAnalysis.Themes,
			ContentStructure: contentlens.StructureCounts{
				Headers:    payload.SemanticAnalysis.ContentStructure.Headers,
				Paragraphs: payload.SemanticAnalysis.ContentStructure.Paragraphs,
				Links:      payload.SemanticAnalysis.ContentStructure.Links,
			},
			SemanticKeywords: payload.SemanticAnalysis.SemanticKeywords,
		},
		Sentiment: contentlens.Sentiment{
			Overall:    payload.Sentiment.Overall,
			Confidence: payload.Sentiment.Confidence,
			Emotions:   payload.Sentiment.Emotions,
		},
		Metadata:              meta,
		QualityScore:          payload.ContentQualityScore,
		ReadabilityScore:      payload.ReadabilityScore,
		ProcessingTimeSeconds: time.Since(start).Seconds(),
	}
}

// errorResult synthesizes the terminal result for a failed pipeline.
func errorResult(u, reason string, start time.Time) *contentlens.AnalysisResult {
	return &contentlens.AnalysisResult{
		URL:                 u,
		Status:              contentlens.StatusError,
		PrimaryCategory:     "other",
		SecondaryCategories: []string{},
		Summary:             "Analysis failed: " + reason,
		KeyInsights:         []string{"Error: " + reason},
		Semantic: contentlens.SemanticAnalysis{
			MainTopics:       []string{},
			Entities:         []contentlens.Entity{},
			Themes:           []string{},
			SemanticKeywords: []string{},
		},
		Sentiment:             contentlens.Sentiment{Overall: "neutral"},
		ProcessingTimeSeconds: time.Since(start).Seconds(),
	}
}

// domainOf returns the host part of a URL for rate limiting. Invalid
// URLs are caught by request validation before this is called.
func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Hostname()
}

// hashContent computes the xxHash of the cleaned text as a hex string.
func hashContent(content string) string {
	if content == "" {
		return ""
	}
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}
