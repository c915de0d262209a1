package mock

import (
	"context"

	"github.com/LenAngliChan/pagetext"
)

var _ pagetext.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of pagetext.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentFn func(ctx context.Context, doc *pagetext.Document) error
}

func (w *DocumentWriter) WriteDocument(ctx context.Context, doc *pagetext.Document) error {
	return w.WriteDocumentFn(ctx, doc)
}

var _ pagetext.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of pagetext.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx, domain)
}
