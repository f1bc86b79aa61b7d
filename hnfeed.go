// Package hnfeed provides a crawling backend for a Hacker News reader.
// It fetches the aggregator's listing pages and the linked article pages,
// extracts normalized post metadata and a cleaned HTML rendering of each
// article body, and serves the results through a small JSON API.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, readability/, cache/).
package hnfeed
