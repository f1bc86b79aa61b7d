package hnfeed

import (
	"context"
	"time"
)

// PostCache is a get-or-compute store memoizing crawled posts by key.
//
// An unexpired entry is returned without invoking the supplier. Otherwise
// the supplier runs; its result is stored on success and the error is
// propagated (and not cached) on failure. Implementations must provide
// single-flight semantics: concurrent callers for the same absent key share
// one in-flight computation.
type PostCache interface {
	Fetch(ctx context.Context, key string, ttl time.Duration, supplier func(context.Context) (*Post, error)) (*Post, error)
}
