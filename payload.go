package contentlens

import "encoding/json"

// AnalysisPayload mirrors the JSON object the LLM endpoint is
// instructed to return. Field names follow the wire schema. Every
// field is optional on the wire; Normalize fills the documented
// defaults so a partially-shaped reply never crashes result
// construction.
type AnalysisPayload struct {
	PrimaryCategory     string           `json:"primary_category"`
	SecondaryCategories []string         `json:"secondary_categories"`
	CategoryConfidence  float64          `json:"category_confidence"`
	ContentSummary      string           `json:"content_summary"`
	KeyInsights         []string         `json:"key_insights"`
	SemanticAnalysis    SemanticPayload  `json:"semantic_analysis"`
	Sentiment           SentimentPayload `json:"sentiment"`
	ContentQualityScore float64          `json:"content_quality_score"`
	ReadabilityScore    *float64         `json:"readability_score"`

	// Partial marks a reply that was valid JSON but deviated from the
	// expected shape and was salvaged field by field. Not part of the
	// wire schema.
	Partial bool `json:"-"`
}

// SemanticPayload is the wire form of the semantic analysis block.
type SemanticPayload struct {
	MainTopics       []string         `json:"main_topics"`
	Entities         []EntityPayload  `json:"entities"`
	Themes           []string         `json:"themes"`
	ContentStructure StructurePayload `json:"content_structure"`
	SemanticKeywords []string         `json:"semantic_keywords"`
}

// EntityPayload is the wire form of a recognized entity.
type EntityPayload struct {
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Relevance float64 `json:"relevance"`
}

// StructurePayload is the wire form of the content structure counts.
type StructurePayload struct {
	Headers    int `json:"headers"`
	Paragraphs int `json:"paragraphs"`
	Links      int `json:"links"`
}

// SentimentPayload is the wire form of the sentiment block.
type SentimentPayload struct {
	Overall    string             `json:"overall"`
	Confidence float64            `json:"confidence"`
	Emotions   map[string]float64 `json:"emotions"`
}

// Normalize fills defaults for fields the reply left out: the primary
// category falls back to "other", sentiment to "neutral", and nil
// slices become empty so downstream JSON renders arrays, not null.
func (p *AnalysisPayload) Normalize() {
	if p.PrimaryCategory == "" {
		p.PrimaryCategory = "other"
	}
	if p.Sentiment.Overall == "" {
		p.Sentiment.Overall = "neutral"
	}
	if p.SecondaryCategories == nil {
		p.SecondaryCategories = []string{}
	}
	if p.KeyInsights == nil {
		p.KeyInsights = []string{}
	}
	if p.SemanticAnalysis.MainTopics == nil {
		p.SemanticAnalysis.MainTopics = []string{}
	}
	if p.SemanticAnalysis.Entities == nil {
		p.SemanticAnalysis.Entities = []EntityPayload{}
	}
	if p.SemanticAnalysis.Themes == nil {
		p.SemanticAnalysis.Themes = []string{}
	}
	if p.SemanticAnalysis.SemanticKeywords == nil {
		p.SemanticAnalysis.SemanticKeywords = []string{}
	}
}

// DecodeAnalysisPayload parses the raw LLM reply. It returns the
// payload and whether the decode was only partial: replies that are
// valid JSON objects but deviate from the expected field shapes are
// salvaged field by field rather than rejected. Replies that are not
// JSON at all return an error.
func DecodeAnalysisPayload(data []byte) (payload *AnalysisPayload, partial bool, err error) {
	p := &AnalysisPayload{}
	if err := json.Unmarshal(data, p); err == nil {
		p.Normalize()
		return p, false, nil
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, false, Errorf(EINTERNAL, "analysis reply is not valid JSON: %v", err)
	}

	p = salvagePayload(raw)
	p.Partial = true
	p.Normalize()
	return p, true, nil
}

// salvagePayload extracts whatever recognizable fields exist in a
// loosely-shaped reply object.
func salvagePayload(raw map[string]any) *AnalysisPayload {
	p := &AnalysisPayload{}
	p.PrimaryCategory, _ = raw["primary_category"].(string)
	p.SecondaryCategories = stringSlice(raw["secondary_categories"])
	p.CategoryConfidence = floatValue(raw["category_confidence"])
	p.ContentSummary, _ = raw["content_summary"].(string)
	p.KeyInsights = stringSlice(raw["key_insights"])
	p.ContentQualityScore = floatValue(raw["content_quality_score"])
	if v, ok := raw["readability_score"].(float64); ok {
		p.ReadabilityScore = &v
	}

	if sem, ok := raw["semantic_analysis"].(map[string]any); ok {
		p.SemanticAnalysis.MainTopics = stringSlice(sem["main_topics"])
		p.SemanticAnalysis.Themes = stringSlice(sem["themes"])
		p.SemanticAnalysis.SemanticKeywords = stringSlice(sem["semantic_keywords"])
		if cs, ok := sem["content_structure"].(map[string]any); ok {
			p.SemanticAnalysis.ContentStructure = StructurePayload{
				Headers:    int(floatValue(cs["headers"])),
				Paragraphs: int(floatValue(cs["paragraphs"])),
				Links:      int(floatValue(cs["links"])),
			}
		}
		if ents, ok := sem["entities"].([]any); ok {
			for _, e := range ents {
				switch v := e.(type) {
				case string:
					p.SemanticAnalysis.Entities = append(p.SemanticAnalysis.Entities, EntityPayload{Name: v})
				case map[string]any:
					name, _ := v["name"].(string)
					typ, _ := v["type"].(string)
					p.SemanticAnalysis.Entities = append(p.SemanticAnalysis.Entities, EntityPayload{
						Name:      name,
						Type:      typ,
						Relevance: floatValue(v["relevance"]),
					})
				}
			}
		}
	}

	if sent, ok := raw["sentiment"].(map[string]any); ok {
		p.Sentiment.Overall, _ = sent["overall"].(string)
		p.Sentiment.Confidence = floatValue(sent["confidence"])
		if emo, ok := sent["emotions"].(map[string]any); ok {
			p.Sentiment.Emotions = make(map[string]float64, len(emo))
			for k, v := range emo {
				p.Sentiment.Emotions[k] = floatValue(v)
			}
		}
	}

	return p
}

func stringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func floatValue(v any) float64 {
	f, _ := v.(float64)
	return f
}
