package hnfeed

// ListingEntry holds the raw fields parsed from one listing page row,
// before URL normalization.
type ListingEntry struct {
	ID       string
	Title    string
	URL      string
	SiteName string
	SubText  string
}

// ListingParser parses an aggregator listing page into its entry rows,
// preserving document order. Zero matching rows is not an error.
type ListingParser interface {
	ParseListing(html string) ([]ListingEntry, error)
}

// PageMeta holds metadata resolved from an article page's meta tags,
// with document-level fallbacks. Empty fields mean "absent".
type PageMeta struct {
	Title       string
	Description string
	CoverImage  string
}

// MetaParser resolves title, description and cover image candidates from
// an article page.
type MetaParser interface {
	ParseMeta(html string) (*PageMeta, error)
}
