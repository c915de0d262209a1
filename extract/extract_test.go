package extract_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/LenAngliChan/pagetext"
	"github.com/LenAngliChan/pagetext/extract"
	pagegoquery "github.com/LenAngliChan/pagetext/goquery"
	pagehtml "github.com/LenAngliChan/pagetext/html"
	"github.com/LenAngliChan/pagetext/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newPipeline wires a Pipeline over the real parser and anchor extractor,
// with the page content served from a map by the mock fetcher.
func newPipeline(pages map[string]string, writer pagetext.DocumentWriter) *extract.Pipeline {
	return &extract.Pipeline{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				html, ok := pages[url]
				if !ok {
					return "", errors.New("connection refused")
				}
				return html, nil
			},
		},
		Parser:  pagehtml.NewParser(),
		Anchors: pagegoquery.NewAnchorExtractor(),
		Writer:  writer,
	}
}

func TestPipeline_ExtractPage(t *testing.T) {
	t.Parallel()

	t.Run("extracts main content into wrapped text", func(t *testing.T) {
		t.Parallel()

		page := `<html>
<head><title>Today's News</title><meta charset="utf-8"></head>
<body>
<nav><a href="/home">Home</a></nav>
<div>
  <div>
    <h1>Big Story</h1>
    <p>The committee approved the plan. Details at the <a href="/archive">city archive</a>.</p>
    <p>Work begins next spring.</p>
  </div>
  <div>ad banner</div>
</div>
<footer>Copyright</footer>
</body>
</html>`

		p := newPipeline(map[string]string{"https://example.com/news/today": page}, nil)

		doc, err := p.ExtractPage(context.Background(), "https://example.com/news/today")

		require.NoError(t, err)
		assert.Equal(t, "Today's News", doc.Title)
		assert.Equal(t, "https://example.com/news/today", doc.SourceURL)
		assert.Equal(t, pagetext.ComputeHash(doc.Text), doc.ContentHash)
		assert.False(t, doc.FetchedAt.IsZero())

		assert.Contains(t, doc.Text, "Big Story")
		assert.Contains(t, doc.Text, "The committee approved the plan")
		assert.Contains(t, doc.Text, "city archive [https://example.com/archive]")
		assert.NotContains(t, doc.Text, "Home")
		assert.NotContains(t, doc.Text, "ad banner")
		assert.NotContains(t, doc.Text, "Copyright")

		for _, line := range strings.Split(doc.Text, "\n") {
			assert.LessOrEqual(t, len(line), 80, "line %q", line)
		}
	})

	t.Run("boilerplate families never reach the output", func(t *testing.T) {
		t.Parallel()

		page := `<div><p>Hello world</p><nav>Skip</nav></div>`

		p := newPipeline(map[string]string{"https://example.com/x": page}, nil)

		doc, err := p.ExtractPage(context.Background(), "https://example.com/x")

		require.NoError(t, err)
		assert.Contains(t, doc.Text, "Hello world")
		assert.NotContains(t, doc.Text, "Skip")
	})

	t.Run("fetch failure is fatal for the page", func(t *testing.T) {
		t.Parallel()

		p := newPipeline(map[string]string{}, nil)

		_, err := p.ExtractPage(context.Background(), "https://example.com/missing")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "fetch")
	})

	t.Run("malformed source URL surfaces EINVALID", func(t *testing.T) {
		t.Parallel()

		p := newPipeline(map[string]string{"example.com/x": "<p>hi</p>"}, nil)

		_, err := p.ExtractPage(context.Background(), "example.com/x")

		require.Error(t, err)
		assert.Equal(t, pagetext.EINVALID, pagetext.ErrorCode(err))
	})
}

func TestPipeline_ExtractAll(t *testing.T) {
	t.Parallel()

	t.Run("persists every page and tallies the result", func(t *testing.T) {
		t.Parallel()

		pages := map[string]string{
			"https://example.com/a": `<div><div><p>Page A body text.</p></div></div>`,
			"https://example.com/b": `<div><div><p>Page B body text.</p></div></div>`,
		}

		var mu sync.Mutex
		saved := make(map[string]string)
		writer := &mock.DocumentWriter{
			WriteDocumentFn: func(_ context.Context, doc *pagetext.Document) error {
				mu.Lock()
				defer mu.Unlock()
				saved[doc.SourceURL] = doc.Text
				return nil
			},
		}

		p := newPipeline(pages, writer)
		p.Concurrency = 2

		result, err := p.ExtractAll(context.Background(), []string{"https://example.com/a", "https://example.com/b"}, nil)

		require.NoError(t, err)
		assert.Equal(t, 2, result.Saved)
		assert.Equal(t, 0, result.Failed)
		assert.Positive(t, result.Bytes)
		assert.Contains(t, saved["https://example.com/a"], "Page A body text.")
		assert.Contains(t, saved["https://example.com/b"], "Page B body text.")
	})

	t.Run("counts page failures without aborting the run", func(t *testing.T) {
		t.Parallel()

		pages := map[string]string{
			"https://example.com/ok": `<div><p>fine</p></div>`,
		}

		writer := &mock.DocumentWriter{
			WriteDocumentFn: func(_ context.Context, _ *pagetext.Document) error { return nil },
		}

		p := newPipeline(pages, writer)

		result, err := p.ExtractAll(context.Background(), []string{"https://example.com/ok", "https://example.com/down"}, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Saved)
		assert.Equal(t, 1, result.Failed)
	})

	t.Run("reports progress events", func(t *testing.T) {
		t.Parallel()

		pages := map[string]string{
			"https://example.com/a": `<div><p>a</p></div>`,
		}

		writer := &mock.DocumentWriter{
			WriteDocumentFn: func(_ context.Context, _ *pagetext.Document) error { return nil },
		}

		p := newPipeline(pages, writer)

		var mu sync.Mutex
		var events []extract.ProgressEvent
		progress := func(e extract.ProgressEvent) {
			mu.Lock()
			defer mu.Unlock()
			events = append(events, e)
		}

		_, err := p.ExtractAll(context.Background(), []string{"https://example.com/a", "https://example.com/down"}, progress)

		require.NoError(t, err)
		require.Len(t, events, 4)
		assert.Equal(t, extract.ProgressStarted, events[0].Type)
		assert.Equal(t, extract.ProgressFinished, events[3].Type)

		types := map[extract.ProgressType]int{}
		for _, e := range events[1:3] {
			types[e.Type]++
		}
		assert.Equal(t, 1, types[extract.ProgressCompleted])
		assert.Equal(t, 1, types[extract.ProgressFailed])
	})

	t.Run("waits on the rate limiter per domain", func(t *testing.T) {
		t.Parallel()

		pages := map[string]string{
			"https://example.com/a": `<div><p>a</p></div>`,
			"https://other.org/b":   `<div><p>b</p></div>`,
		}

		writer := &mock.DocumentWriter{
			WriteDocumentFn: func(_ context.Context, _ *pagetext.Document) error { return nil },
		}

		var mu sync.Mutex
		var domains []string
		p := newPipeline(pages, writer)
		p.RateLimiter = &mock.DomainLimiter{
			WaitFn: func(_ context.Context, domain string) error {
				mu.Lock()
				defer mu.Unlock()
				domains = append(domains, domain)
				return nil
			},
		}

		_, err := p.ExtractAll(context.Background(), []string{"https://example.com/a", "https://other.org/b"}, nil)

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"https://example.com", "https://other.org"}, domains)
	})
}
