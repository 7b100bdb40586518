package contentlens

// ContentMetadata is a small record derived deterministically from the
// page HTML. Missing values stay empty; ReadingTimeMinutes is always
// at least 1.
type ContentMetadata struct {
	Title              string   `json:"title,omitempty"`
	Description        string   `json:"description,omitempty"`
	Keywords           []string `json:"keywords,omitempty"`
	Author             string   `json:"author,omitempty"`
	Language           string   `json:"language,omitempty"`
	WordCount          int      `json:"wordCount"`
	ReadingTimeMinutes int      `json:"readingTimeMinutes"`
}

// Extractor turns raw HTML into cleaned text and page metadata.
//
// Both operations are pure: identical HTML yields identical output,
// and neither ever fails the pipeline. When the HTML cannot be parsed
// ExtractText returns the raw input unchanged and ExtractMetadata
// returns an empty record.
type Extractor interface {
	// ExtractText removes non-content elements (script, style, nav,
	// footer, header), selects the most content-dense element from a
	// fixed selector priority list, and collapses whitespace.
	ExtractText(html string) string

	// ExtractMetadata reads title, description, keywords, author and
	// language from the document head and computes word count and
	// reading time from the extracted text.
	ExtractMetadata(html string, fetched FetchMetadata) *ContentMetadata
}
