package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/user/hnfeed"
)

// Meta tag candidates, in priority order. The first candidate with a
// non-empty content attribute wins.
var (
	titleMetaCandidates = []string{
		`meta[property="og:title"]`,
		`meta[property="article:title"]`,
		`meta[name="twitter:title"]`,
		`meta[name="title"]`,
	}
	descriptionMetaCandidates = []string{
		`meta[name="description"]`,
		`meta[property="og:description"]`,
		`meta[name="twitter:description"]`,
		`meta[property="article:description"]`,
	}
	coverImageMetaCandidates = []string{
		`meta[property="og:image"]`,
		`meta[name="twitter:image"]`,
	}
)

var _ hnfeed.MetaParser = (*MetaParser)(nil)

// MetaParser resolves article page metadata from standard meta-tag
// conventions with document-level fallbacks.
type MetaParser struct{}

// NewMetaParser creates a new MetaParser.
func NewMetaParser() *MetaParser {
	return &MetaParser{}
}

// ParseMeta resolves title, description and cover image for an article
// page. Missing candidates are not an error; the corresponding field is
// left empty.
func (p *MetaParser) ParseMeta(html string) (*hnfeed.PageMeta, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, hnfeed.Errorf(hnfeed.EINVALID, "failed to parse article HTML: %v", err)
	}

	meta := &hnfeed.PageMeta{
		Title:       firstMetaContent(doc, titleMetaCandidates),
		Description: firstMetaContent(doc, descriptionMetaCandidates),
		CoverImage:  firstMetaContent(doc, coverImageMetaCandidates),
	}

	if meta.Title == "" {
		meta.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if meta.CoverImage == "" {
		meta.CoverImage = doc.Find("body img").First().AttrOr("src", "")
	}

	return meta, nil
}

// firstMetaContent returns the content attribute of the first candidate
// selector that matches with a non-empty value.
func firstMetaContent(doc *goquery.Document, candidates []string) string {
	for _, candidate := range candidates {
		if content := doc.Find(candidate).First().AttrOr("content", ""); content != "" {
			return content
		}
	}
	return ""
}
