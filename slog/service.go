package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/user/hnfeed"
)

// Ensure LoggingService implements hnfeed.PostService.
var _ hnfeed.PostService = (*LoggingService)(nil)

// LoggingService wraps a PostService with per-operation logging.
type LoggingService struct {
	next   hnfeed.PostService
	logger *slog.Logger
}

// NewLoggingService creates a new LoggingService.
func NewLoggingService(next hnfeed.PostService, logger *slog.Logger) *LoggingService {
	return &LoggingService{next: next, logger: logger}
}

// Posts delegates to the wrapped service and logs the operation.
func (s *LoggingService) Posts(ctx context.Context, page int) (posts []*hnfeed.Post, err error) {
	defer func(begin time.Time) {
		s.logger.Info("listing crawl",
			"page", page,
			"count", len(posts),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Posts(ctx, page)
}

// Detail delegates to the wrapped service and logs the operation.
func (s *LoggingService) Detail(ctx context.Context, url string) (post *hnfeed.Post, err error) {
	defer func(begin time.Time) {
		s.logger.Info("detail crawl",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Detail(ctx, url)
}
