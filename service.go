package hnfeed

import "context"

// PostService exposes the two crawl operations backing the JSON API.
type PostService interface {
	// Posts crawls one listing page (1-based; values below 1 mean page 1)
	// and returns its entries as summaries in document order.
	Posts(ctx context.Context, page int) ([]*Post, error)

	// Detail crawls a single article page identified by its absolute URL
	// and returns the fully populated post.
	Detail(ctx context.Context, url string) (*Post, error)
}
