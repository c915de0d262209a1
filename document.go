package pagetext

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Document is the final product of one extraction run: the wrapped,
// link-annotated plain text of a single page. A document's lifecycle spans
// one run; it is never shared across invocations.
type Document struct {
	SourceURL   string
	Title       string
	Text        string
	ContentHash string
	FetchedAt   time.Time
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.SourceURL == "" {
		return Errorf(EINVALID, "document source URL required")
	}
	if d.Text == "" {
		return Errorf(EINVALID, "document text required")
	}
	return nil
}

// ComputeHash computes a hash of the content using xxhash. Used to detect
// unchanged documents.
func ComputeHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}

// DocumentWriter persists a document.
type DocumentWriter interface {
	// WriteDocument writes the document's text to storage. An existing
	// document for the same source is overwritten without warning.
	WriteDocument(ctx context.Context, doc *Document) error
}
