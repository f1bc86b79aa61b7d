// Package readability provides the default generic fallback extractor,
// used for article hosts without a configured site filter rule.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/user/hnfeed"
)

// Ensure Extractor implements hnfeed.Extractor at compile time.
var _ hnfeed.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to guess the main readable content of an
// arbitrary article page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*hnfeed.ExtractResult, error) {
	if rawHTML == "" {
		return nil, hnfeed.Errorf(hnfeed.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &hnfeed.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
