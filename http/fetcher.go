// Package http provides the transport boundary in both directions: the
// plain-GET implementations of hnfeed.Fetcher and hnfeed.ImageChecker, and
// the JSON API server fronting a hnfeed.PostService.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/user/hnfeed"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the crawler to origin servers.
const DefaultUserAgent = "hnfeed/1.0"

// Ensure Fetcher implements hnfeed.Fetcher at compile time.
var _ hnfeed.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain GET requests.
// There is no retry on failure: a fetch either completes or fails.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new GET-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL. Non-2xx responses
// and transport errors surface as EUNAVAILABLE.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", hnfeed.Errorf(hnfeed.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", hnfeed.Errorf(hnfeed.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", hnfeed.Errorf(hnfeed.EUNAVAILABLE, "fetch %s: HTTP %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", hnfeed.Errorf(hnfeed.EUNAVAILABLE, "fetch %s: %v", url, err)
	}

	return string(body), nil
}

// Close releases resources. For the GET fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
