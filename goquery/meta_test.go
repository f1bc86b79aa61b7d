package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/hnfeed/goquery"
)

func TestMetaParser_ParseMeta(t *testing.T) {
	t.Parallel()

	parse := func(t *testing.T, html string) (title, description, cover string) {
		t.Helper()
		meta, err := goquery.NewMetaParser().ParseMeta(html)
		require.NoError(t, err)
		return meta.Title, meta.Description, meta.CoverImage
	}

	t.Run("takes the highest-priority meta candidates", func(t *testing.T) {
		t.Parallel()

		title, description, cover := parse(t, `<html><head>
			<meta name="title" content="Generic Title">
			<meta property="og:title" content="OG Title">
			<meta name="twitter:description" content="Twitter Desc">
			<meta name="description" content="Plain Desc">
			<meta name="twitter:image" content="https://example.com/tw.png">
			<meta property="og:image" content="https://example.com/og.png">
			<title>Document Title</title>
		</head><body></body></html>`)

		assert.Equal(t, "OG Title", title)
		assert.Equal(t, "Plain Desc", description)
		assert.Equal(t, "https://example.com/og.png", cover)
	})

	t.Run("walks down the candidate list", func(t *testing.T) {
		t.Parallel()

		title, description, cover := parse(t, `<html><head>
			<meta name="twitter:title" content="Twitter Title">
			<meta property="article:description" content="Article Desc">
			<meta name="twitter:image" content="https://example.com/tw.png">
		</head><body></body></html>`)

		assert.Equal(t, "Twitter Title", title)
		assert.Equal(t, "Article Desc", description)
		assert.Equal(t, "https://example.com/tw.png", cover)
	})

	t.Run("falls back to the document title element", func(t *testing.T) {
		t.Parallel()

		title, _, _ := parse(t, `<html><head>
			<title>  Document Title </title>
		</head><body></body></html>`)

		assert.Equal(t, "Document Title", title)
	})

	t.Run("falls back to the first body image", func(t *testing.T) {
		t.Parallel()

		_, _, cover := parse(t, `<html><body>
			<p>text</p>
			<img src="/first.png"><img src="/second.png">
		</body></html>`)

		assert.Equal(t, "/first.png", cover)
	})

	t.Run("missing candidates leave fields absent", func(t *testing.T) {
		t.Parallel()

		title, description, cover := parse(t, `<html><body><p>bare page</p></body></html>`)

		assert.Empty(t, title)
		assert.Empty(t, description)
		assert.Empty(t, cover)
	})
}
