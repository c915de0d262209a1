package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/LenAngliChan/pagetext"
	"github.com/LenAngliChan/pagetext/extract"
	"github.com/LenAngliChan/pagetext/fs"
	pagegoquery "github.com/LenAngliChan/pagetext/goquery"
	pagehtml "github.com/LenAngliChan/pagetext/html"
	pagehttp "github.com/LenAngliChan/pagetext/http"
	pageslog "github.com/LenAngliChan/pagetext/slog"
	"github.com/alecthomas/kong"
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
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagetext"),
		kong.Description("Extract the main text content of web pages to plain-text files"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	timeout := cli.Timeout
	if timeout == 0 {
		timeout = pagehttp.DefaultFetchTimeout
	}

	var fetcher pagetext.Fetcher = pagehttp.NewFetcher(pagehttp.WithTimeout(timeout))
	defer fetcher.Close()

	var writer pagetext.DocumentWriter
	if cli.Stdout {
		writer = &stdoutWriter{w: stdout, header: len(cli.URLs) > 1}
	} else {
		writer = fs.NewWriter(cli.Out)
	}

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		fetcher = pageslog.NewLoggingFetcher(fetcher, logger)
		writer = pageslog.NewLoggingWriter(writer, logger)
	}

	pipeline := &extract.Pipeline{
		Fetcher: fetcher,
		Parser:  pagehtml.NewParser(),
		Anchors: pagegoquery.NewAnchorExtractor(),
		Writer:  writer,
		Pruner: &pagetext.Pruner{
			Coefficient: cli.Coefficient,
			Forced:      !cli.NoForced,
		},
		MaxWidth:    cli.Width,
		RateLimiter: extract.NewDomainLimiter(cli.RPS),
		Concurrency: cli.Concurrency,
	}

	progress := func(e extract.ProgressEvent) {
		if e.Type == extract.ProgressFailed {
			fmt.Fprintf(stderr, "failed %s: %v\n", e.URL, e.Error)
		}
	}

	result, err := pipeline.ExtractAll(ctx, cli.URLs, progress)
	if err != nil {
		return err
	}

	if !cli.Stdout {
		fmt.Fprintf(stderr, "saved %d page(s), %d failed\n", result.Saved, result.Failed)
	}
	if result.Saved == 0 && result.Failed > 0 {
		return fmt.Errorf("all %d page(s) failed", result.Failed)
	}
	return nil
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Width       int           `short:"w" default:"80" help:"Maximum output line width"`
	Coefficient float64       `default:"0.5" help:"Density pruning coefficient"`
	NoForced    bool          `help:"Disable the paragraph-count protection during pruning"`
	Out         string        `short:"o" default:"." help:"Base directory for output files"`
	Stdout      bool          `help:"Print extracted text instead of writing files"`
	Concurrency int           `short:"c" default:"3" help:"Concurrent fetch limit"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	RPS         float64       `default:"1" help:"Requests per second per domain"`
	Verbose     bool          `short:"v" help:"Log fetch and write operations to stderr"`
	URLs        []string      `arg:"" name:"url" required:"" help:"Page URLs to extract"`
}
