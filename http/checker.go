package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/user/hnfeed"
)

// Ensure ImageChecker implements hnfeed.ImageChecker at compile time.
var _ hnfeed.ImageChecker = (*ImageChecker)(nil)

// ImageChecker verifies cover image URLs by issuing a GET request and
// requiring a 200 response with an image content type.
type ImageChecker struct {
	client *http.Client
}

// NewImageChecker creates a new ImageChecker. A non-positive timeout falls
// back to DefaultFetchTimeout.
func NewImageChecker(timeout time.Duration) *ImageChecker {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &ImageChecker{
		client: &http.Client{Timeout: timeout},
	}
}

// CheckImage returns nil when the URL serves an image with HTTP 200.
func (c *ImageChecker) CheckImage(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return hnfeed.Errorf(hnfeed.EINVALID, "invalid image URL %q: %v", url, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return hnfeed.Errorf(hnfeed.EUNAVAILABLE, "check image %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return hnfeed.Errorf(hnfeed.EUNAVAILABLE, "check image %s: HTTP %d", url, resp.StatusCode)
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "image") {
		return hnfeed.Errorf(hnfeed.EINVALID, "check image %s: content type %q is not an image", url, resp.Header.Get("Content-Type"))
	}

	return nil
}
