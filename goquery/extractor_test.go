package goquery_test

import (
	"testing"

	"github.com/jswierad/contentlens"
	lensgoquery "github.com/jswierad/contentlens/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_ExtractText(t *testing.T) {
	t.Parallel()

	e := lensgoquery.NewExtractor()

	t.Run("prefers the main element", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<nav>Navigation menu</nav>
			<main>Main content here</main>
			<div class="content">Secondary content</div>
		</body></html>`

		assert.Equal(t, "Main content here", e.ExtractText(html))
	})

	t.Run("probes selectors in priority order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div id="main">From id main</div>
			<article>From article</article>
		</body></html>`

		// article outranks #main in the probe order.
		assert.Equal(t, "From article", e.ExtractText(html))
	})

	t.Run("falls back to body text", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Just a paragraph.</p></body></html>`

		assert.Equal(t, "Just a paragraph.", e.ExtractText(html))
	})

	t.Run("strips script style nav footer header", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<header>Site header</header>
			<nav>Site nav</nav>
			<script>var secret = "leaked";</script>
			<style>.hidden { display: none }</style>
			<p>Visible text</p>
			<footer>Site footer</footer>
		</body></html>`

		text := e.ExtractText(html)

		assert.Equal(t, "Visible text", text)
		assert.NotContains(t, text, "leaked")
		assert.NotContains(t, text, "Site header")
		assert.NotContains(t, text, "Site nav")
		assert.NotContains(t, text, "Site footer")
	})

	t.Run("collapses whitespace runs", func(t *testing.T) {
		t.Parallel()

		html := "<html><body><main>one\n\n   two\t\tthree   </main></body></html>"

		assert.Equal(t, "one two three", e.ExtractText(html))
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article>Stable output</article></body></html>`

		assert.Equal(t, e.ExtractText(html), e.ExtractText(html))
	})

	t.Run("non-content tags inside main are still removed", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main><script>alert(1)</script>Clean</main></body></html>`

		assert.Equal(t, "Clean", e.ExtractText(html))
	})
}

func TestExtractor_ExtractMetadata(t *testing.T) {
	t.Parallel()

	e := lensgoquery.NewExtractor()

	t.Run("extracts the full record", func(t *testing.T) {
		t.Parallel()

		html := `<html lang="en"><head><title>T</title>` +
			`<meta name="description" content="D">` +
			`<meta name="keywords" content="a, b">` +
			`<meta name="author" content="Auth">` +
			`</head><body>word word word</body></html>`

		meta := e.ExtractMetadata(html, contentlens.FetchMetadata{})

		assert.Equal(t, "T", meta.Title)
		assert.Equal(t, "D", meta.Description)
		assert.Equal(t, []string{"a", "b"}, meta.Keywords)
		assert.Equal(t, "Auth", meta.Author)
		assert.Equal(t, "en", meta.Language)
		assert.Equal(t, 3, meta.WordCount)
		assert.Equal(t, 1, meta.ReadingTimeMinutes)
	})

	t.Run("og:description is the fallback", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta property="og:description" content="OG"></head><body></body></html>`

		meta := e.ExtractMetadata(html, contentlens.FetchMetadata{})

		assert.Equal(t, "OG", meta.Description)
	})

	t.Run("name=description wins over og:description", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>` +
			`<meta property="og:description" content="OG">` +
			`<meta name="description" content="plain">` +
			`</head><body></body></html>`

		meta := e.ExtractMetadata(html, contentlens.FetchMetadata{})

		assert.Equal(t, "plain", meta.Description)
	})

	t.Run("empty keyword entries are dropped", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta name="keywords" content=" a ,, b , "></head><body></body></html>`

		meta := e.ExtractMetadata(html, contentlens.FetchMetadata{})

		assert.Equal(t, []string{"a", "b"}, meta.Keywords)
	})

	t.Run("article:author is the author fallback", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta property="article:author" content="Jo"></head><body></body></html>`

		meta := e.ExtractMetadata(html, contentlens.FetchMetadata{})

		assert.Equal(t, "Jo", meta.Author)
	})

	t.Run("proxy metadata fills missing title and description", func(t *testing.T) {
		t.Parallel()

		meta := e.ExtractMetadata("<html><body>x</body></html>", contentlens.FetchMetadata{
			Title:       "Proxy Title",
			Description: "Proxy Desc",
		})

		assert.Equal(t, "Proxy Title", meta.Title)
		assert.Equal(t, "Proxy Desc", meta.Description)
	})

	t.Run("reading time is at least one minute", func(t *testing.T) {
		t.Parallel()

		meta := e.ExtractMetadata("<html><body></body></html>", contentlens.FetchMetadata{})

		assert.Equal(t, 0, meta.WordCount)
		assert.Equal(t, 1, meta.ReadingTimeMinutes)
	})

	t.Run("reading time rounds on word count", func(t *testing.T) {
		t.Parallel()

		// 500 words at 200 wpm rounds to 3 minutes.
		words := make([]byte, 0, 500*2)
		for range 500 {
			words = append(words, 'w', ' ')
		}
		html := "<html><body><main>" + string(words) + "</main></body></html>"

		meta := e.ExtractMetadata(html, contentlens.FetchMetadata{})

		require.Equal(t, 500, meta.WordCount)
		assert.Equal(t, 3, meta.ReadingTimeMinutes)
	})
}
