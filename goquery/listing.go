// Package goquery implements the HTML parsing side of the crawl pipeline
// using CSS selectors: the listing page parser, the article meta parser,
// and the site-aware content extraction engine.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/user/hnfeed"
)

// Listing page selectors. Each article occupies one row carrying a stable
// id attribute; the adjacent sibling row carries the score/author/age
// metadata.
const (
	entryRowSelector  = "tr.athing"
	titleLinkSelector = ".title > a:first-child"
	siteNameSelector  = ".sitestr"
	subTextSelector   = ".subtext"
)

var _ hnfeed.ListingParser = (*ListingParser)(nil)

// ListingParser parses aggregator listing pages into entry rows.
type ListingParser struct{}

// NewListingParser creates a new ListingParser.
func NewListingParser() *ListingParser {
	return &ListingParser{}
}

// ParseListing returns the listing's entry rows in document order.
// Rows without an id attribute are skipped. Zero matching rows yields an
// empty slice, not an error.
func (p *ListingParser) ParseListing(html string) ([]hnfeed.ListingEntry, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, hnfeed.Errorf(hnfeed.EINVALID, "failed to parse listing HTML: %v", err)
	}

	entries := []hnfeed.ListingEntry{}
	doc.Find(entryRowSelector).Each(func(_ int, row *goquery.Selection) {
		id, ok := row.Attr("id")
		if !ok || id == "" {
			return
		}

		link := row.Find(titleLinkSelector).First()

		entries = append(entries, hnfeed.ListingEntry{
			ID:       id,
			Title:    strings.TrimSpace(link.Text()),
			URL:      link.AttrOr("href", ""),
			SiteName: strings.TrimSpace(row.Find(siteNameSelector).First().Text()),
			SubText:  hnfeed.Squish(row.Next().Find(subTextSelector).Text()),
		})
	})

	return entries, nil
}
