package mock

import "github.com/user/hnfeed"

var _ hnfeed.ListingParser = (*ListingParser)(nil)

// ListingParser is a mock implementation of hnfeed.ListingParser.
type ListingParser struct {
	ParseListingFn func(html string) ([]hnfeed.ListingEntry, error)
}

func (p *ListingParser) ParseListing(html string) ([]hnfeed.ListingEntry, error) {
	return p.ParseListingFn(html)
}

var _ hnfeed.MetaParser = (*MetaParser)(nil)

// MetaParser is a mock implementation of hnfeed.MetaParser.
type MetaParser struct {
	ParseMetaFn func(html string) (*hnfeed.PageMeta, error)
}

func (p *MetaParser) ParseMeta(html string) (*hnfeed.PageMeta, error) {
	return p.ParseMetaFn(html)
}
