package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/hnfeed/goquery"
)

const listingHTML = `
<html><body><table>
<tr class="athing" id="101">
  <td class="title"><a href="https://example.com/first">First Post</a></td>
  <td class="title"><span class="sitestr">example.com</span></td>
</tr>
<tr><td class="subtext">
  120 points by alice
  3 hours ago  | 45 comments
</td></tr>
<tr class="athing" id="102">
  <td class="title"><a href="item?id=102">Ask: second post</a></td>
</tr>
<tr><td class="subtext">15 points by bob 1 hour ago</td></tr>
</table></body></html>`

func TestListingParser_ParseListing(t *testing.T) {
	t.Parallel()

	t.Run("parses rows in document order", func(t *testing.T) {
		t.Parallel()

		parser := goquery.NewListingParser()

		entries, err := parser.ParseListing(listingHTML)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		assert.Equal(t, "101", entries[0].ID)
		assert.Equal(t, "First Post", entries[0].Title)
		assert.Equal(t, "https://example.com/first", entries[0].URL)
		assert.Equal(t, "example.com", entries[0].SiteName)

		assert.Equal(t, "102", entries[1].ID)
		assert.Equal(t, "Ask: second post", entries[1].Title)
		assert.Equal(t, "item?id=102", entries[1].URL)
		assert.Empty(t, entries[1].SiteName)
	})

	t.Run("squishes the sibling subtext row", func(t *testing.T) {
		t.Parallel()

		parser := goquery.NewListingParser()

		entries, err := parser.ParseListing(listingHTML)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		assert.Equal(t, "120 points by alice 3 hours ago | 45 comments", entries[0].SubText)
		assert.Equal(t, "15 points by bob 1 hour ago", entries[1].SubText)
	})

	t.Run("skips rows without an id attribute", func(t *testing.T) {
		t.Parallel()

		parser := goquery.NewListingParser()

		entries, err := parser.ParseListing(`<table>
			<tr class="athing"><td class="title"><a href="/x">No ID</a></td></tr>
		</table>`)
		require.NoError(t, err)

		assert.Empty(t, entries)
	})

	t.Run("zero matching rows yields an empty list", func(t *testing.T) {
		t.Parallel()

		parser := goquery.NewListingParser()

		entries, err := parser.ParseListing("<html><body><p>maintenance</p></body></html>")
		require.NoError(t, err)

		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})
}
