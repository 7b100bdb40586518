package contentlens

import "context"

// Analysis result statuses.
const (
	StatusSuccess      = "success"
	StatusError        = "error"
	StatusPartialError = "partial_error"
)

// Entity is a named entity recognized in the content.
type Entity struct {
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Relevance float64 `json:"relevance"`
}

// StructureCounts summarizes the structural shape of the page.
type StructureCounts struct {
	Headers    int `json:"headers"`
	Paragraphs int `json:"paragraphs"`
	Links      int `json:"links"`
}

// SemanticAnalysis holds the semantic layer of an analysis.
type SemanticAnalysis struct {
	MainTopics       []string        `json:"mainTopics"`
	Entities         []Entity        `json:"entities"`
	Themes           []string        `json:"themes"`
	ContentStructure StructureCounts `json:"contentStructure"`
	SemanticKeywords []string        `json:"semanticKeywords"`
}

// Sentiment holds the sentiment layer of an analysis. Overall is one
// of "positive", "negative" or "neutral".
type Sentiment struct {
	Overall    string             `json:"overall"`
	Confidence float64            `json:"confidence"`
	Emotions   map[string]float64 `json:"emotions,omitempty"`
}

// AnalysisResult is the terminal, per-URL outcome of the pipeline.
// Every requested URL yields exactly one result; failures surface as
// Status != StatusSuccess with the reason folded into Summary and
// KeyInsights, never as a missing result.
type AnalysisResult struct {
	URL                   string           `json:"url"`
	Status                string           `json:"status"`
	PrimaryCategory       string           `json:"primaryCategory"`
	SecondaryCategories   []string         `json:"secondaryCategories"`
	CategoryConfidence    float64          `json:"categoryConfidence"`
	Summary               string           `json:"summary"`
	KeyInsights           []string         `json:"keyInsights"`
	Semantic              SemanticAnalysis `json:"semanticAnalysis"`
	Sentiment             Sentiment        `json:"sentiment"`
	Metadata              *ContentMetadata `json:"metadata,omitempty"`
	QualityScore          float64          `json:"qualityScore"`
	ReadabilityScore      *float64         `json:"readabilityScore,omitempty"`
	ProcessingTimeSeconds float64          `json:"processingTimeSeconds"`
}

// AnalysisInput is the material handed to an Analyzer for one URL.
type AnalysisInput struct {
	// Text is the cleaned page text. Analyzers truncate it to their
	// configured maximum before submission.
	Text string

	// URL is the source page, included in the prompt for context.
	URL string

	// Metadata, when non-nil, is serialized into the prompt.
	Metadata *ContentMetadata

	Depth            Depth
	CustomCategories []string
}

// Analyzer submits cleaned text to an LLM chat endpoint and parses the
// JSON-shaped reply. Unlike Fetcher and Extractor, an Analyzer may
// fail: transport and parse errors are returned to the caller, which
// is responsible for converting them into error-shaped results.
type Analyzer interface {
	Analyze(ctx context.Context, input AnalysisInput) (*AnalysisPayload, error)
}
