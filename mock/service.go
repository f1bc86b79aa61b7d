package mock

import (
	"context"

	"github.com/user/hnfeed"
)

var _ hnfeed.PostService = (*PostService)(nil)

// PostService is a mock implementation of hnfeed.PostService.
type PostService struct {
	PostsFn  func(ctx context.Context, page int) ([]*hnfeed.Post, error)
	DetailFn func(ctx context.Context, url string) (*hnfeed.Post, error)
}

func (s *PostService) Posts(ctx context.Context, page int) ([]*hnfeed.Post, error) {
	return s.PostsFn(ctx, page)
}

func (s *PostService) Detail(ctx context.Context, url string) (*hnfeed.Post, error) {
	return s.DetailFn(ctx, url)
}
