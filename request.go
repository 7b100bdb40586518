package contentlens

import "net/url"

// Depth controls how thorough the LLM analysis should be.
type Depth string

// Analysis depth levels.
const (
	DepthBasic         Depth = "basic"
	DepthDetailed      Depth = "detailed"
	DepthComprehensive Depth = "comprehensive"
)

// ParseDepth validates a depth string and returns the typed value.
// An empty string defaults to DepthComprehensive.
func ParseDepth(s string) (Depth, error) {
	switch Depth(s) {
	case "":
		return DepthComprehensive, nil
	case DepthBasic, DepthDetailed, DepthComprehensive:
		return Depth(s), nil
	}
	return "", Errorf(EINVALID, "invalid analysis depth %q", s)
}

// AnalysisRequest describes a single-URL analysis. Immutable once
// constructed; Validate must pass before the request enters the
// pipeline.
type AnalysisRequest struct {
	URL              string
	Depth            Depth
	IncludeMetadata  bool
	CustomCategories []string
}

// Validate returns an error if the request contains invalid fields.
// The URL must be absolute with both a scheme and a host.
func (r *AnalysisRequest) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "URL required")
	}
	u, err := url.Parse(r.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Errorf(EINVALID, "invalid URL format: %s", r.URL)
	}
	if r.Depth != "" {
		if _, err := ParseDepth(string(r.Depth)); err != nil {
			return err
		}
	}
	return nil
}

// BatchRequest describes a multi-URL analysis.
type BatchRequest struct {
	URLs             []string
	Depth            Depth
	IncludeMetadata  bool
	CustomCategories []string

	// Parallel enables concurrent processing. When false, URLs are
	// analyzed one at a time in input order.
	Parallel bool

	// MaxConcurrent bounds in-flight pipelines when Parallel is set.
	// Clamped to [1, 10]; zero means the engine default.
	MaxConcurrent int
}
