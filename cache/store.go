// Package cache provides an in-memory get-or-compute store with TTL expiry
// and single-flight computation, backing the crawl layer's memoization of
// listing entries and detail pages.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/user/hnfeed"
	"golang.org/x/sync/singleflight"
)

// Ensure Store implements hnfeed.PostCache at compile time.
var _ hnfeed.PostCache = (*Store)(nil)

// entry is one stored value with its storage timestamp.
type entry struct {
	post     *hnfeed.Post
	storedAt time.Time
}

// Store is an in-memory PostCache. Entries are recomputed lazily after
// expiry; there is no background eviction and no deletion API.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	group   singleflight.Group
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source. Used in tests to control expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		entries: make(map[string]entry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch returns the cached value for key if it is younger than ttl,
// otherwise computes it via supplier. Concurrent callers for the same
// absent key share a single in-flight computation. Supplier failures are
// propagated and never cached.
func (s *Store) Fetch(ctx context.Context, key string, ttl time.Duration, supplier func(context.Context) (*hnfeed.Post, error)) (*hnfeed.Post, error) {
	if post, ok := s.lookup(key, ttl); ok {
		return post, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		// A concurrent flight may have stored the value between the
		// lookup above and acquiring the flight.
		if post, ok := s.lookup(key, ttl); ok {
			return post, nil
		}

		post, err := supplier(ctx)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.entries[key] = entry{post: post, storedAt: s.now()}
		s.mu.Unlock()

		return post, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*hnfeed.Post), nil
}

// Len returns the number of stored entries, expired ones included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// lookup returns the stored value for key if it has not outlived ttl.
func (s *Store) lookup(key string, ttl time.Duration) (*hnfeed.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if s.now().Sub(e.storedAt) > ttl {
		return nil, false
	}
	return e.post, true
}
