// Package extract orchestrates the extraction pipeline: preprocess, parse,
// prune, resolve links, reflow, persist. The core algorithms stay
// single-threaded per document; concurrency exists only across documents.
package extract

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/LenAngliChan/pagetext"
	"golang.org/x/sync/errgroup"
)

// defaultConcurrency bounds concurrent page extractions when the caller
// does not set one.
const defaultConcurrency = 3

// Pipeline runs the full extraction for one or more pages.
type Pipeline struct {
	Fetcher      pagetext.Fetcher
	Parser       pagetext.Parser
	Anchors      pagetext.AnchorExtractor
	Writer       pagetext.DocumentWriter
	Preprocessor *pagetext.Preprocessor
	Pruner       *pagetext.Pruner
	MaxWidth     int
	RateLimiter  pagetext.DomainLimiter
	Concurrency  int
}

// Result holds the outcome of an extraction run.
type Result struct {
	Saved  int
	Failed int
	Bytes  int
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during an extraction run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressFunc is a callback for reporting extraction progress.
type ProgressFunc func(event ProgressEvent)

// ExtractPage runs the pipeline for a single page: fetch, preprocess,
// extract anchors from the cleaned markup, parse, prune, resolve links,
// reflow. The returned document is complete but not yet persisted.
func (p *Pipeline) ExtractPage(ctx context.Context, url string) (*pagetext.Document, error) {
	rawHTML, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}

	cleaned := p.preprocessor().Preprocess(rawHTML)

	// Anchors come from the cleaned markup before pruning, so link
	// references survive even when their subtree does not.
	anchors, err := p.Anchors.ExtractAnchors(cleaned)
	if err != nil {
		return nil, fmt.Errorf("extract anchors: %w", err)
	}

	links, err := pagetext.ResolveLinks(anchors, url)
	if err != nil {
		return nil, err
	}

	root, err := p.Parser.Parse(cleaned)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}

	var title string
	if tn := root.Find("title"); tn != nil {
		title = strings.TrimSpace(tn.Text())
	}

	p.pruner().Prune(root)

	text := pagetext.Reflow(root, links, p.MaxWidth)

	return &pagetext.Document{
		SourceURL:   url,
		Title:       title,
		Text:        text,
		ContentHash: pagetext.ComputeHash(text),
		FetchedAt:   time.Now().UTC(),
	}, nil
}

// ExtractAll extracts and persists every URL, fanning out up to
// Concurrency workers with per-domain rate limiting. The progress
// callback, if provided, receives events as pages complete. Individual
// page failures are counted, not fatal; context cancellation is.
func (p *Pipeline) ExtractAll(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	total := len(urls)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	type pageResult struct {
		url   string
		bytes int
		err   error
	}

	resultCh := make(chan pageResult, total)

	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, url := range urls {
		url := url
		g.Go(func() error {
			if err := p.waitForDomain(gctx, url); err != nil {
				return err
			}

			doc, err := p.ExtractPage(gctx, url)
			if err == nil {
				err = p.Writer.WriteDocument(gctx, doc)
			}

			res := pageResult{url: url, err: err}
			if err == nil {
				res.bytes = len(doc.Text)
			}
			resultCh <- res

			if progress != nil {
				event := ProgressEvent{
					Type:      ProgressCompleted,
					Completed: int(completed.Add(1)),
					Total:     total,
					URL:       url,
					Error:     err,
				}
				if err != nil {
					event.Type = ProgressFailed
				}
				progress(event)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(resultCh)

	result := &Result{}
	for res := range resultCh {
		if res.err != nil {
			result.Failed++
			continue
		}
		result.Saved++
		result.Bytes += res.bytes
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return result, nil
}

// waitForDomain blocks on the rate limiter for the URL's domain, if a
// limiter is configured. URLs without a recognizable domain pass through;
// they fail properly during extraction.
func (p *Pipeline) waitForDomain(ctx context.Context, url string) error {
	if p.RateLimiter == nil {
		return nil
	}
	domain, err := pagetext.Domain(url)
	if err != nil {
		return nil
	}
	return p.RateLimiter.Wait(ctx, domain)
}

func (p *Pipeline) preprocessor() *pagetext.Preprocessor {
	if p.Preprocessor != nil {
		return p.Preprocessor
	}
	return pagetext.NewPreprocessor()
}

func (p *Pipeline) pruner() *pagetext.Pruner {
	if p.Pruner != nil {
		return p.Pruner
	}
	return pagetext.NewPruner()
}
