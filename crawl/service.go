// Package crawl orchestrates the listing and detail crawl operations.
// It coordinates fetching, parsing, content extraction and the post cache,
// and implements hnfeed.PostService.
package crawl

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/user/hnfeed"
	"golang.org/x/sync/errgroup"
)

// Defaults applied when the corresponding Service field is zero.
const (
	DefaultTTL         = 24 * time.Hour
	DefaultConcurrency = 10
)

// Ensure Service implements hnfeed.PostService at compile time.
var _ hnfeed.PostService = (*Service)(nil)

// Service crawls the aggregator listing and linked article pages.
//
// Images and Limiter are optional: without Images, cover image URLs are
// returned unverified; without Limiter, secondary article fetches are not
// throttled.
type Service struct {
	Fetcher hnfeed.Fetcher
	Listing hnfeed.ListingParser
	Meta    hnfeed.MetaParser
	Content hnfeed.ContentExtractor
	Cache   hnfeed.PostCache
	Images  hnfeed.ImageChecker
	Limiter hnfeed.DomainLimiter

	// ListingURL is the aggregator's listing page; the page number is
	// appended as the "p" query parameter.
	ListingURL string

	// SiteBase is the aggregator site's own root, used to absolutize
	// same-site relative listing hrefs.
	SiteBase string

	TTL         time.Duration
	Concurrency int
}

// Posts crawls one listing page and returns its entries in document order.
// A listing fetch or parse failure is fatal; per-entry cover image lookups
// are best-effort.
func (s *Service) Posts(ctx context.Context, page int) ([]*hnfeed.Post, error) {
	if page < 1 {
		page = 1
	}

	pageURL, err := s.listingPageURL(page)
	if err != nil {
		return nil, err
	}

	html, err := s.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	entries, err := s.Listing.ParseListing(html)
	if err != nil {
		return nil, err
	}

	// Entries are crawled by a bounded worker pool; results land at their
	// original index so cache hits and fetch latencies cannot reorder the
	// listing.
	posts := make([]*hnfeed.Post, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency())

	for i, entry := range entries {
		g.Go(func() error {
			post, err := s.Cache.Fetch(gctx, "summary/"+entry.ID, s.ttl(), func(ctx context.Context) (*hnfeed.Post, error) {
				return s.crawlSummary(ctx, entry), nil
			})
			if err != nil {
				return err
			}
			posts[i] = post
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return posts, nil
}

// Detail crawls a single article page identified by its absolute URL.
func (s *Service) Detail(ctx context.Context, rawURL string) (*hnfeed.Post, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, hnfeed.Errorf(hnfeed.EINVALID, "detail URL must be absolute, got %q", rawURL)
	}

	return s.Cache.Fetch(ctx, "detail/"+rawURL, s.ttl(), func(ctx context.Context) (*hnfeed.Post, error) {
		return s.crawlDetail(ctx, rawURL, u.Hostname())
	})
}

// crawlSummary builds a listing post and attempts the secondary fetch of
// the post's own page for its cover image. The secondary fetch is
// non-fatal: any failure leaves the cover image unset.
func (s *Service) crawlSummary(ctx context.Context, entry hnfeed.ListingEntry) *hnfeed.Post {
	post := &hnfeed.Post{
		Title:    entry.Title,
		URL:      hnfeed.NormalizeURL(entry.URL, s.SiteBase),
		SiteName: entry.SiteName,
		SubText:  entry.SubText,
	}
	post.CoverImage = s.lookupCoverImage(ctx, post.URL)
	return post
}

// crawlDetail fetches and fully parses one article page.
func (s *Service) crawlDetail(ctx context.Context, rawURL, host string) (*hnfeed.Post, error) {
	html, err := s.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	meta, err := s.Meta.ParseMeta(html)
	if err != nil {
		return nil, err
	}

	content, err := s.Content.ExtractContent(html, host)
	if err != nil {
		return nil, err
	}

	return &hnfeed.Post{
		Title:       meta.Title,
		URL:         rawURL,
		Description: meta.Description,
		CoverImage:  s.resolveCoverImage(ctx, meta.CoverImage, rawURL),
		Content:     content,
	}, nil
}

// lookupCoverImage fetches the post's own page and resolves its cover
// image. Every failure degrades to "no cover image".
func (s *Service) lookupCoverImage(ctx context.Context, postURL string) string {
	if postURL == "" {
		return ""
	}

	if s.Limiter != nil {
		u, err := url.Parse(postURL)
		if err != nil {
			return ""
		}
		if err := s.Limiter.Wait(ctx, u.Host); err != nil {
			return ""
		}
	}

	html, err := s.Fetcher.Fetch(ctx, postURL)
	if err != nil {
		return ""
	}
	meta, err := s.Meta.ParseMeta(html)
	if err != nil {
		return ""
	}

	return s.resolveCoverImage(ctx, meta.CoverImage, postURL)
}

// resolveCoverImage normalizes a raw cover image value and, when an image
// checker is configured, drops URLs that fail the reachability check.
func (s *Service) resolveCoverImage(ctx context.Context, raw, postURL string) string {
	cover := hnfeed.NormalizeCoverImage(raw, postURL)
	if cover == "" {
		return ""
	}
	if s.Images != nil && s.Images.CheckImage(ctx, cover) != nil {
		return ""
	}
	return cover
}

// listingPageURL appends the page number to the configured listing URL.
func (s *Service) listingPageURL(page int) (string, error) {
	u, err := url.Parse(s.ListingURL)
	if err != nil {
		return "", hnfeed.Errorf(hnfeed.EINVALID, "invalid listing URL %q: %v", s.ListingURL, err)
	}
	q := u.Query()
	q.Set("p", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (s *Service) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return DefaultTTL
}

func (s *Service) concurrency() int {
	if s.Concurrency > 0 {
		return s.Concurrency
	}
	return DefaultConcurrency
}
