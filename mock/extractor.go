package mock

import (
	"github.com/jswierad/contentlens"
)

var _ contentlens.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of contentlens.Extractor.
type Extractor struct {
	ExtractTextFn     func(html string) string
	ExtractMetadataFn func(html string, fetched contentlens.FetchMetadata) *contentlens.ContentMetadata
}

func (e *Extractor) ExtractText(html string) string {
	return e.ExtractTextFn(html)
}

func (e *Extractor) ExtractMetadata(html string, fetched contentlens.FetchMetadata) *contentlens.ContentMetadata {
	return e.ExtractMetadataFn(html, fetched)
}
