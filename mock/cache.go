package mock

import (
	"context"
	"time"

	"github.com/user/hnfeed"
)

var _ hnfeed.PostCache = (*PostCache)(nil)

// PostCache is a mock implementation of hnfeed.PostCache.
type PostCache struct {
	FetchFn func(ctx context.Context, key string, ttl time.Duration, supplier func(context.Context) (*hnfeed.Post, error)) (*hnfeed.Post, error)
}

func (c *PostCache) Fetch(ctx context.Context, key string, ttl time.Duration, supplier func(context.Context) (*hnfeed.Post, error)) (*hnfeed.Post, error) {
	return c.FetchFn(ctx, key, ttl, supplier)
}

// PassthroughCache returns a PostCache that always invokes the supplier,
// which is the behavior most orchestration tests want.
func PassthroughCache() *PostCache {
	return &PostCache{
		FetchFn: func(ctx context.Context, _ string, _ time.Duration, supplier func(context.Context) (*hnfeed.Post, error)) (*hnfeed.Post, error) {
			return supplier(ctx)
		},
	}
}
