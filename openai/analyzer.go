// Package openai provides the OpenAI-compatible implementation of
// contentlens.Analyzer on top of the official Go SDK. It works against
// any chat-completions endpoint that honors the OpenAI wire format,
// including Azure OpenAI deployments.
package openai

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
	"golang.org/x/sync/errgroup"

	"github.com/jswierad/contentlens"
)

// Request parameters fixed by the analysis contract.
const (
	temperature = 0.3
	maxTokens   = 4000
)

// Ensure Analyzer implements contentlens.Analyzer at compile time.
var _ contentlens.Analyzer = (*Analyzer)(nil)

// Analyzer submits cleaned page text to a chat-completions endpoint
// and decodes the JSON reply.
type Analyzer struct {
	client           openai.Client
	model            string
	maxContentLength int
}

// NewAnalyzer creates an Analyzer from the runtime configuration.
// cfg.Endpoint and cfg.APIKey select the service; cfg.Model names the
// model or deployment.
func NewAnalyzer(cfg contentlens.Config, opts ...option.RequestOption) *Analyzer {
	clientOpts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(cfg.Endpoint))
	}
	clientOpts = append(clientOpts, opts...)

	maxLen := cfg.MaxContentLength
	if maxLen <= 0 {
		maxLen = contentlens.DefaultMaxContentLength
	}

	return &Analyzer{
		client:           openai.NewClient(clientOpts...),
		model:            cfg.Model,
		maxContentLength: maxLen,
	}
}

// Analyze performs one chat-completions call. Transport failures and
// unusable replies are returned as errors; converting them into
// error-shaped results is the caller's job.
func (a *Analyzer) Analyze(ctx context.Context, input contentlens.AnalysisInput) (*contentlens.AnalysisPayload, error) {
	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(a.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(BuildSystemPrompt()),
			openai.UserMessage(BuildUserPrompt(input, a.maxContentLength)),
		},
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(maxTokens),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	}

	resp, err := a.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, contentlens.Errorf(contentlens.EUNAVAILABLE, "analysis request failed for %s: %v", input.URL, err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return nil, contentlens.Errorf(contentlens.EUNAVAILABLE, "analysis endpoint returned no choices for %s", input.URL)
	}

	payload, _, err := contentlens.DecodeAnalysisPayload([]byte(resp.Choices[0].Message.Content))
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// Outcome pairs one AnalyzeAll item with its payload or error.
type Outcome struct {
	URL     string
	Payload *contentlens.AnalysisPayload
	Err     error
}

// AnalyzeAll issues independent Analyze calls concurrently. Per-item
// failures become per-item error markers; one bad item never aborts
// the group. The result order matches the input order.
func (a *Analyzer) AnalyzeAll(ctx context.Context, inputs []contentlens.AnalysisInput) []Outcome {
	outcomes := make([]Outcome, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	for i, input := range inputs {
		g.Go(func() error {
			payload, err := a.Analyze(gctx, input)
			outcomes[i] = Outcome{URL: input.URL, Payload: payload, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}
