package hnfeed

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Extractor guesses the main readable content of an arbitrary article page.
// It is the generic fallback used when no site-specific filter rule exists.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ExtractResult, error)
}

// ContentExtractor turns an article page into a sanitized HTML fragment
// wrapped in a single container element. Implementations consult the site
// filter registry for the host and fall back to generic extraction when no
// rule is configured.
type ContentExtractor interface {
	ExtractContent(html string, host string) (string, error)
}
