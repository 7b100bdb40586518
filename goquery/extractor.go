// Package goquery provides the goquery-based implementation of
// contentlens.Extractor: deterministic main-content text extraction
// and page metadata extraction.
package goquery

import (
	"math"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jswierad/contentlens"
)

// nonContentSelector matches elements that never contribute readable
// text and are removed before extraction.
const nonContentSelector = "script, style, nav, footer, header"

// mainSelectors is the probe order for the most content-dense element.
// The first match wins; extraction falls back to body, then to the
// whole document.
var mainSelectors = []string{
	"main", "article", "#content", ".content",
	"#main", ".main", ".post-content", ".entry-content",
}

// wordsPerMinute is the reading speed assumed for the reading-time
// estimate.
const wordsPerMinute = 200

// Ensure Extractor implements contentlens.Extractor at compile time.
var _ contentlens.Extractor = (*Extractor)(nil)

// Extractor extracts cleaned text and metadata from HTML. The zero
// value is ready to use; both operations are pure and never fail the
// pipeline.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText strips non-content elements, picks the first matching
// main-content selector (falling back to body, then the whole
// document), and collapses whitespace runs to single spaces. If the
// HTML cannot be parsed the raw input is returned unchanged.
func (e *Extractor) ExtractText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}

	doc.Find(nonContentSelector).Remove()

	var text string
	for _, selector := range mainSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() > 0 {
			text = sel.Text()
			break
		}
	}

	if text == "" {
		if body := doc.Find("body").First(); body.Length() > 0 {
			text = body.Text()
		} else {
			text = doc.Text()
		}
	}

	return strings.Join(strings.Fields(text), " ")
}

// ExtractMetadata reads the metadata record from the document head and
// derives word count and reading time from the extracted text. Parse
// failures yield an empty record, never an error.
func (e *Extractor) ExtractMetadata(html string, fetched contentlens.FetchMetadata) *contentlens.ContentMetadata {
	meta := &contentlens.ContentMetadata{ReadingTimeMinutes: 1}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return meta
	}

	meta.Title = strings.TrimSpace(doc.Find("title").First().Text())
	if meta.Title == "" {
		// A proxy may have extracted the title before us.
		meta.Title = fetched.Title
	}

	meta.Description = metaContent(doc, `meta[name="description"]`, `meta[property="og:description"]`)
	if meta.Description == "" {
		meta.Description = fetched.Description
	}

	if keywords := metaContent(doc, `meta[name="keywords"]`); keywords != "" {
		for _, k := range strings.Split(keywords, ",") {
			if k = strings.TrimSpace(k); k != "" {
				meta.Keywords = append(meta.Keywords, k)
			}
		}
	}

	meta.Author = metaContent(doc, `meta[name="author"]`, `meta[property="article:author"]`)

	if lang, ok := doc.Find("html").First().Attr("lang"); ok {
		meta.Language = strings.TrimSpace(lang)
	}

	text := e.ExtractText(html)
	if text != "" {
		meta.WordCount = len(strings.Fields(text))
	}
	meta.ReadingTimeMinutes = readingTime(meta.WordCount)

	return meta
}

// metaContent returns the content attribute of the first selector that
// matches, in the given priority order.
func metaContent(doc *goquery.Document, selectors ...string) string {
	for _, selector := range selectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		if content, ok := sel.Attr("content"); ok {
			return strings.TrimSpace(content)
		}
	}
	return ""
}

// readingTime estimates minutes to read, never below one.
func readingTime(words int) int {
	minutes := int(math.Round(float64(words) / wordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}
