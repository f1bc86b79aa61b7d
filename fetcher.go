package hnfeed

import "context"

// Fetcher retrieves raw HTML from URLs over plain GET requests.
type Fetcher interface {
	// Fetch returns the response body for the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// ImageChecker verifies that a cover image URL is reachable and actually
// serves an image. Failures are advisory: callers degrade to "no cover
// image" rather than aborting a crawl.
type ImageChecker interface {
	CheckImage(ctx context.Context, url string) error
}

// DomainLimiter throttles outbound requests on a per-domain basis.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled before the wait completes.
	Wait(ctx context.Context, domain string) error
}
