package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/LenAngliChan/pagetext"
)

// Ensure LoggingWriter implements pagetext.DocumentWriter.
var _ pagetext.DocumentWriter = (*LoggingWriter)(nil)

// LoggingWriter wraps a DocumentWriter with logging.
type LoggingWriter struct {
	next   pagetext.DocumentWriter
	logger *slog.Logger
}

// NewLoggingWriter creates a new LoggingWriter.
func NewLoggingWriter(next pagetext.DocumentWriter, logger *slog.Logger) *LoggingWriter {
	return &LoggingWriter{next: next, logger: logger}
}

// WriteDocument delegates to the wrapped writer and logs the operation.
func (w *LoggingWriter) WriteDocument(ctx context.Context, doc *pagetext.Document) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write document",
			"url", doc.SourceURL,
			"bytes", len(doc.Text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteDocument(ctx, doc)
}
