package hnfeed

import (
	"net/url"
	"regexp"
	"strings"
)

// absoluteURLPattern matches URLs that already carry an http(s) scheme
// followed by a non-whitespace body.
var absoluteURLPattern = regexp.MustCompile(`^https?://\S+`)

// Post represents a single aggregated article. A Post is immutable once
// constructed for a given crawl: URL and CoverImage are normalized to
// absolute URLs at construction time (see NormalizeURL and
// NormalizeCoverImage), and empty string fields mean "absent".
type Post struct {
	Title       string
	URL         string
	SiteName    string
	SubText     string
	Content     string
	CoverImage  string
	Description string
}

// PostSummary is the wire representation of a listing entry.
// Absent fields render as JSON null.
type PostSummary struct {
	Title    *string `json:"title"`
	URL      *string `json:"url"`
	SiteName *string `json:"site_name"`
	SubText  *string `json:"sub_text"`
}

// PostDetail is the wire representation of a fully crawled article.
// Absent fields render as JSON null.
type PostDetail struct {
	Title       *string `json:"title"`
	URL         *string `json:"url"`
	Description *string `json:"description"`
	CoverImage  *string `json:"cover_image"`
	Content     *string `json:"content"`
}

// Summary maps the post to its listing wire representation.
func (p *Post) Summary() PostSummary {
	return PostSummary{
		Title:    nullable(p.Title),
		URL:      nullable(p.URL),
		SiteName: nullable(p.SiteName),
		SubText:  nullable(p.SubText),
	}
}

// Detail maps the post to its detail wire representation.
func (p *Post) Detail() PostDetail {
	return PostDetail{
		Title:       nullable(p.Title),
		URL:         nullable(p.URL),
		Description: nullable(p.Description),
		CoverImage:  nullable(p.CoverImage),
		Content:     nullable(p.Content),
	}
}

// nullable converts an empty string to a nil pointer so that absent
// fields serialize as JSON null rather than "".
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// IsAbsoluteURL reports whether raw already begins with an http(s) scheme.
func IsAbsoluteURL(raw string) bool {
	return absoluteURLPattern.MatchString(raw)
}

// NormalizeURL returns an absolute URL for a raw listing href. Absolute
// inputs are returned unchanged; relative paths are resolved against
// siteBase, the aggregator site's own root. Returns "" when raw is empty
// or cannot be resolved.
func NormalizeURL(raw, siteBase string) string {
	if raw == "" {
		return ""
	}
	if IsAbsoluteURL(raw) {
		return raw
	}
	base, err := url.Parse(siteBase)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return ""
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// NormalizeCoverImage returns an absolute URL for a raw cover image value.
// Absolute inputs are returned unchanged; relative paths are joined to the
// scheme and host of the post's own URL. Returns "" when raw is empty or
// postURL does not yield a usable scheme and host.
func NormalizeCoverImage(raw, postURL string) string {
	if raw == "" {
		return ""
	}
	if IsAbsoluteURL(raw) {
		return raw
	}
	u, err := url.Parse(postURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host + "/" + strings.TrimPrefix(raw, "/")
}

// Squish collapses runs of whitespace (including newlines) to a single
// space and trims both ends.
func Squish(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
