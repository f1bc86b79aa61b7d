// Package mock provides hand-written mock implementations of the hnfeed
// domain interfaces for use in tests.
package mock

import "github.com/user/hnfeed"

var _ hnfeed.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of hnfeed.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*hnfeed.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*hnfeed.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ hnfeed.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of hnfeed.ContentExtractor.
type ContentExtractor struct {
	ExtractContentFn func(html string, host string) (string, error)
}

func (e *ContentExtractor) ExtractContent(html string, host string) (string, error) {
	return e.ExtractContentFn(html, host)
}
