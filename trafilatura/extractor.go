// Package trafilatura provides an alternative generic fallback extractor
// built on go-trafilatura, selectable in place of the readability one.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/user/hnfeed"
	"golang.org/x/net/html"
)

// Ensure Extractor implements hnfeed.Extractor at compile time.
var _ hnfeed.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to guess the main readable content of an
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &hnfeed.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
