package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/user/hnfeed"
)

// Dependencies holds the wired services and IO for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Service hnfeed.PostService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	ListingURL   string        `default:"https://news.ycombinator.com/news" help:"Aggregator listing page URL"`
	BaseURL      string        `default:"https://news.ycombinator.com/" help:"Aggregator site base URL for relative links"`
	Filters      string        `type:"path" help:"YAML site filter config for content extraction"`
	Extractor    string        `default:"readability" enum:"readability,trafilatura" help:"Generic content extractor for sites without a filter rule"`
	TTL          time.Duration `default:"24h" help:"Cache TTL for crawled posts"`
	Concurrency  int           `short:"c" default:"10" help:"Concurrent fetch limit for listing crawls"`
	RPS          float64       `name:"rps" default:"1" help:"Per-domain request rate for article fetches"`
	VerifyImages bool          `help:"Drop cover images that do not resolve to an image response"`

	Serve  ServeCmd  `cmd:"" help:"Run the JSON API server"`
	Posts  PostsCmd  `cmd:"" help:"Crawl a listing page and print its posts as JSON"`
	Detail DetailCmd `cmd:"" help:"Crawl a single article and print it as JSON"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" help:"HTTP listen address"`
}

// PostsCmd is the "posts" subcommand.
type PostsCmd struct {
	Page int `short:"p" default:"1" help:"Listing page number"`
}

// DetailCmd is the "detail" subcommand.
type DetailCmd struct {
	URL string `arg:"" help:"Absolute URL of the article to crawl"`
}
