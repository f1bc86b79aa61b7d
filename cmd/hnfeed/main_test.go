package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/hnfeed"
	main "github.com/user/hnfeed/cmd/hnfeed"
	"github.com/user/hnfeed/mock"
)

// testContext returns a background context for tests.
func testContext() context.Context {
	return context.Background()
}

func TestCmdPosts(t *testing.T) {
	t.Parallel()

	t.Run("prints posts as JSON", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Service = &mock.PostService{
			PostsFn: func(ctx context.Context, page int) ([]*hnfeed.Post, error) {
				assert.Equal(t, 1, page)
				return []*hnfeed.Post{
					{Title: "First Post", URL: "https://one.example/a", SiteName: "one.example", SubText: "12 points"},
					{Title: "Second Post", URL: "https://two.example/b"},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"posts"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `"title": "First Post"`)
		assert.Contains(t, stdout.String(), `"url": "https://one.example/a"`)
		assert.Contains(t, stdout.String(), `"site_name": "one.example"`)
		assert.Contains(t, stdout.String(), `"sub_text": "12 points"`)
		assert.Contains(t, stdout.String(), `"title": "Second Post"`)
		assert.Empty(t, stderr.String())
	})

	t.Run("passes --page flag to the service", func(t *testing.T) {
		t.Parallel()

		var gotPage int
		m := main.NewMain()
		m.Service = &mock.PostService{
			PostsFn: func(ctx context.Context, page int) ([]*hnfeed.Post, error) {
				gotPage = page
				return []*hnfeed.Post{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"posts", "--page", "3"}, stdout, stderr)

		require.NoError(t, err)
		assert.Equal(t, 3, gotPage)
	})

	t.Run("renders absent fields as null", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Service = &mock.PostService{
			PostsFn: func(ctx context.Context, page int) ([]*hnfeed.Post, error) {
				return []*hnfeed.Post{{Title: "No Link"}}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"posts"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `"url": null`)
		assert.Contains(t, stdout.String(), `"site_name": null`)
	})

	t.Run("returns error when crawl fails", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Service = &mock.PostService{
			PostsFn: func(ctx context.Context, page int) ([]*hnfeed.Post, error) {
				return nil, hnfeed.Errorf(hnfeed.EUNAVAILABLE, "listing page unreachable")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"posts"}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
		assert.Contains(t, stderr.String(), "listing page unreachable")
		assert.Empty(t, stdout.String())
	})
}

func TestCmdDetail(t *testing.T) {
	t.Parallel()

	t.Run("prints post detail as JSON", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Service = &mock.PostService{
			DetailFn: func(ctx context.Context, url string) (*hnfeed.Post, error) {
				assert.Equal(t, "https://one.example/a", url)
				return &hnfeed.Post{
					Title:       "First Post",
					URL:         url,
					Description: "An article",
					CoverImage:  "https://one.example/cover.png",
					Content:     "<div><p>Body</p></div>",
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"detail", "https://one.example/a"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `"title": "First Post"`)
		assert.Contains(t, stdout.String(), `"description": "An article"`)
		assert.Contains(t, stdout.String(), `"cover_image": "https://one.example/cover.png"`)
		assert.Contains(t, stdout.String(), `"content": "<div><p>Body</p></div>"`)
		assert.Empty(t, stderr.String())
	})

	t.Run("returns error for missing url argument", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Service = &mock.PostService{}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"detail"}, stdout, stderr)

		assert.Error(t, err)
	})

	t.Run("returns error when crawl fails", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Service = &mock.PostService{
			DetailFn: func(ctx context.Context, url string) (*hnfeed.Post, error) {
				return nil, hnfeed.Errorf(hnfeed.EINVALID, "url must be absolute")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"detail", "not-a-url"}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
		assert.Contains(t, stderr.String(), "url must be absolute")
		assert.Empty(t, stdout.String())
	})
}

func TestRun_FilterConfig(t *testing.T) {
	t.Parallel()

	t.Run("returns error for unreadable filter config", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"posts", "--filters", "/nonexistent/filters.yml"}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load filter config")
	})
}

func TestRun_HelpFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"--help flag", []string{"--help"}},
		{"-h flag", []string{"-h"}},
		{"help command", []string{"help"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := main.NewMain()

			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			err := m.Run(testContext(), tt.args, stdout, stderr)

			require.NoError(t, err)
			// Usage should be printed to stdout (not stderr) when explicitly requested
			assert.Contains(t, stdout.String(), "Usage: hnfeed")
			assert.Contains(t, stdout.String(), "Commands:")
			assert.Empty(t, stderr.String())
		})
	}
}

func TestRun_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{}, stdout, stderr)

	// No args should show usage to stdout and return error
	require.Error(t, err)
	assert.Contains(t, stdout.String(), "Usage: hnfeed")
}
