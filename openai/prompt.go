package openai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jswierad/contentlens"
)

// TruncationMarker is appended to content that was cut to fit the
// configured maximum length.
const TruncationMarker = "... [content truncated]"

// systemPrompt is the fixed instruction that pins the reply to the
// JSON schema contentlens.AnalysisPayload decodes.
const systemPrompt = `You are an expert content analyst specializing in semantic analysis and categorization of web content.
Your task is to provide comprehensive, accurate, and structured analysis of web page content.

Always respond with valid JSON following this exact structure:
{
    "primary_category": "category_name",
    "secondary_categories": ["category1", "category2"],
    "category_confidence": 0.95,
    "content_summary": "Brief summary of the content",
    "key_insights": ["insight1", "insight2", "insight3"],
    "semantic_analysis": {
        "main_topics": ["topic1", "topic2"],
        "entities": [{"name": "entity", "type": "PERSON|ORG|LOCATION|etc", "relevance": 0.8}],
        "themes": ["theme1", "theme2"],
        "content_structure": {"headers": 5, "paragraphs": 12, "links": 8},
        "semantic_keywords": ["keyword1", "keyword2"]
    },
    "sentiment": {
        "overall": "positive|negative|neutral",
        "confidence": 0.85,
        "emotions": {"joy": 0.3, "trust": 0.4, "fear": 0.1}
    },
    "content_quality_score": 0.88,
    "readability_score": 0.75
}

For categorization, create appropriate category names based on the content. Use clear, descriptive categories like:
"news", "sports", "technology", "business", "entertainment", "education", "health", "travel",
"politics", "science", "finance", "lifestyle", "blog", "ecommerce", "satire", "humor", "opinion",
"review", "documentation", "forum", "social_media", or any other relevant category that best describes the content.

Be creative and accurate with categories - don't limit yourself to a predefined list.
Use lowercase, single words or underscore-separated phrases (e.g., "social_media", "product_review").

Provide deep semantic understanding, not just keyword matching.`

// BuildSystemPrompt returns the fixed system instruction.
func BuildSystemPrompt() string {
	return systemPrompt
}

// BuildUserPrompt builds the per-URL user message. The cleaned text is
// truncated to maxContentLength characters with a marker appended.
func BuildUserPrompt(input contentlens.AnalysisInput, maxContentLength int) string {
	content := Truncate(input.Text, maxContentLength)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Analyze the following web page content from URL: %s\n", input.URL)
	fmt.Fprintf(&sb, "Analysis depth required: %s\n", input.Depth)

	if input.Metadata != nil {
		if encoded, err := json.MarshalIndent(input.Metadata, "", "  "); err == nil {
			fmt.Fprintf(&sb, "Page metadata: %s\n", encoded)
		}
	}

	if len(input.CustomCategories) > 0 {
		fmt.Fprintf(&sb, "Focus on these custom categories: %s\n", strings.Join(input.CustomCategories, ", "))
	}

	divider := strings.Repeat("=", 50)
	sb.WriteString("Web page content:\n")
	sb.WriteString(divider + "\n")
	sb.WriteString(content + "\n")
	sb.WriteString(divider + "\n\n")
	sb.WriteString("Provide a comprehensive semantic analysis including:\n")
	sb.WriteString("1. Accurate categorization with confidence scores\n")
	sb.WriteString("2. Deep content understanding and key insights\n")
	sb.WriteString("3. Semantic analysis with topics, entities, and themes\n")
	sb.WriteString("4. Sentiment analysis with emotional nuances\n")
	sb.WriteString("5. Content quality and readability assessment\n\n")
	sb.WriteString("Focus on semantic meaning rather than surface-level keywords.\n")
	sb.WriteString("Consider context, intent, and underlying themes.\n")
	sb.WriteString("Provide actionable insights about the content's purpose and value.")

	return sb.String()
}

// Truncate cuts text to max characters, appending TruncationMarker
// when anything was removed. Non-positive max disables truncation.
func Truncate(text string, max int) string {
	if max <= 0 || len(text) <= max {
		return text
	}
	return text[:max] + TruncationMarker
}
