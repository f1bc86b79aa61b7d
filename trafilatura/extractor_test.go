package trafilatura_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/hnfeed"
	"github.com/user/hnfeed/trafilatura"
)

// Ensure Extractor implements hnfeed.Extractor at compile time.
var _ hnfeed.Extractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("")

		require.Error(t, err)
		assert.Equal(t, hnfeed.EINVALID, hnfeed.ErrorCode(err))
	})

	t.Run("extracts main content without boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/">Home</a><a href="/news">News</a></nav>
<article>
<h1>An Article</h1>
<p>This is important article content that should be extracted.</p>
</article>
<aside>Sidebar content</aside>
<footer>Copyright 2026</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "important article content")
		assert.NotContains(t, result.ContentHTML, "Sidebar content")
	})

	t.Run("extracts title from meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>An Article - Site</title>
<meta property="og:title" content="An Article">
</head>
<body>
<main>
<h1>An Article</h1>
<p>This is the main content of the article page.</p>
</main>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
	})
}
