// Package gemini provides a Google Gemini implementation of
// contentlens.Analyzer for deployments that prefer the Gemini API over
// an OpenAI-compatible endpoint.
package gemini

import (
	"context"

	"google.golang.org/genai"

	"github.com/jswierad/contentlens"
	"github.com/jswierad/contentlens/openai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Analyzer implements contentlens.Analyzer at compile time.
var _ contentlens.Analyzer = (*Analyzer)(nil)

// Analyzer submits cleaned page text to Gemini and decodes the JSON
// reply. The prompt contract is shared with the openai package so both
// backends produce the same payload shape.
type Analyzer struct {
	client           *genai.Client
	model            string
	maxContentLength int
}

// NewAnalyzer creates a new Analyzer. An empty model falls back to
// DefaultModel.
func NewAnalyzer(client *genai.Client, model string, maxContentLength int) *Analyzer {
	if model == "" {
		model = DefaultModel
	}
	if maxContentLength <= 0 {
		maxContentLength = contentlens.DefaultMaxContentLength
	}
	return &Analyzer{client: client, model: model, maxContentLength: maxContentLength}
}

// Analyze performs one GenerateContent call. Failures are returned to
// the caller; this layer never synthesizes a fallback result.
func (a *Analyzer) Analyze(ctx context.Context, input contentlens.AnalysisInput) (*contentlens.AnalysisPayload, error) {
	prompt := openai.BuildUserPrompt(input, a.maxContentLength)

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return nil, contentlens.Errorf(contentlens.EUNAVAILABLE, "analysis request failed for %s: %v", input.URL, err)
	}
	if result == nil {
		return nil, contentlens.Errorf(contentlens.EUNAVAILABLE, "gemini returned nil result for %s", input.URL)
	}

	payload, _, err := contentlens.DecodeAnalysisPayload([]byte(result.Text()))
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// BuildConfig returns the GenerateContentConfig for analysis calls:
// the fixed system instruction, a JSON-only response and the analysis
// temperature.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.3)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: openai.BuildSystemPrompt(),
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}
