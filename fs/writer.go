// Package fs provides file-based persistence for extracted documents.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"regexp"

	"github.com/LenAngliChan/pagetext"
)

var (
	schemePrefix  = regexp.MustCompile(`^http(s)?://(www\.)?`)
	trailingNoise = regexp.MustCompile(`\.s?html?$|/$`)
)

// URLToPath converts a source URL to a relative output path: the scheme
// and an optional www. prefix are stripped, a trailing .htm/.html/.shtml
// extension or slash is dropped, and .txt is appended.
// Example: https://www.example.com/news/today.html → example.com/news/today.txt
func URLToPath(rawURL string) string {
	name := schemePrefix.ReplaceAllString(rawURL, "")
	name = trailingNoise.ReplaceAllString(name, "")
	if name == "" {
		name = "index"
	}
	return name + ".txt"
}

// Ensure Writer implements pagetext.DocumentWriter at compile time.
var _ pagetext.DocumentWriter = (*Writer)(nil)

// Writer writes documents as UTF-8 text files under a base directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes below the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteDocument writes the document's text to the path derived from its
// source URL, creating parent directories as needed. A file whose content
// already hashes the same is left untouched; anything else is overwritten
// without warning.
func (w *Writer) WriteDocument(ctx context.Context, doc *pagetext.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, URLToPath(doc.SourceURL))

	if existing, err := os.ReadFile(fullPath); err == nil {
		if pagetext.ComputeHash(string(existing)) == pagetext.ComputeHash(doc.Text) {
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(doc.Text), 0644)
}
