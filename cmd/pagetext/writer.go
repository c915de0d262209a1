package main

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/LenAngliChan/pagetext"
)

// Ensure stdoutWriter implements pagetext.DocumentWriter.
var _ pagetext.DocumentWriter = (*stdoutWriter)(nil)

// stdoutWriter prints extracted documents instead of persisting them.
// Writes are serialized so concurrent extractions don't interleave.
type stdoutWriter struct {
	mu     sync.Mutex
	w      io.Writer
	header bool
}

func (s *stdoutWriter) WriteDocument(_ context.Context, doc *pagetext.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.header {
		if _, err := fmt.Fprintf(s.w, "==> %s <==\n", doc.SourceURL); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(s.w, doc.Text); err != nil {
		return err
	}
	_, err := io.WriteString(s.w, "\n")
	return err
}
