package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/user/hnfeed"
	"github.com/user/hnfeed/cache"
	"github.com/user/hnfeed/crawl"
	"github.com/user/hnfeed/goquery"
	hnhttp "github.com/user/hnfeed/http"
	"github.com/user/hnfeed/readability"
	hnslog "github.com/user/hnfeed/slog"
	"github.com/user/hnfeed/trafilatura"
	"github.com/user/hnfeed/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Service overrides the crawl stack when set. Used for end-to-end
	// testing without network access.
	Service hnfeed.PostService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("hnfeed"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'hnfeed --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = slog.New(slog.NewTextHandler(stderr, nil))

	// Use the injected service when present, otherwise wire the crawl stack.
	if m.Service != nil {
		deps.Service = m.Service
		return kongCtx.Run(deps)
	}

	registry := hnfeed.NewFilterRegistry(nil)
	if cli.Filters != "" {
		registry, err = yaml.LoadFilters(cli.Filters)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: see filters.example.yml for the expected format")
			return fmt.Errorf("failed to load filter config %q: %w", cli.Filters, err)
		}
	}

	var fallback hnfeed.Extractor
	switch cli.Extractor {
	case "trafilatura":
		fallback = trafilatura.NewExtractor()
	default:
		fallback = readability.NewExtractor()
	}

	fetcher := hnhttp.NewFetcher()
	defer fetcher.Close()

	service := &crawl.Service{
		Fetcher:     hnslog.NewLoggingFetcher(fetcher, deps.Logger),
		Listing:     goquery.NewListingParser(),
		Meta:        goquery.NewMetaParser(),
		Content:     goquery.NewContentExtractor(registry, fallback),
		Cache:       cache.New(),
		Limiter:     crawl.NewDomainLimiter(cli.RPS),
		ListingURL:  cli.ListingURL,
		SiteBase:    cli.BaseURL,
		TTL:         cli.TTL,
		Concurrency: cli.Concurrency,
	}
	if cli.VerifyImages {
		service.Images = hnhttp.NewImageChecker(0)
	}

	deps.Service = hnslog.NewLoggingService(service, deps.Logger)

	return kongCtx.Run(deps)
}
