package mock

import (
	"context"

	"github.com/user/hnfeed"
)

var _ hnfeed.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of hnfeed.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ hnfeed.ImageChecker = (*ImageChecker)(nil)

// ImageChecker is a mock implementation of hnfeed.ImageChecker.
type ImageChecker struct {
	CheckImageFn func(ctx context.Context, url string) error
}

func (c *ImageChecker) CheckImage(ctx context.Context, url string) error {
	return c.CheckImageFn(ctx, url)
}

var _ hnfeed.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of hnfeed.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
