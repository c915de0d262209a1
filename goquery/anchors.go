// Package goquery provides a goquery-backed implementation of
// pagetext.AnchorExtractor.
package goquery

import (
	"strings"

	"github.com/LenAngliChan/pagetext"
	"github.com/PuerkitoBio/goquery"
)

// Ensure AnchorExtractor implements pagetext.AnchorExtractor at compile time.
var _ pagetext.AnchorExtractor = (*AnchorExtractor)(nil)

// AnchorExtractor lifts anchors from markup using CSS selection.
type AnchorExtractor struct{}

// NewAnchorExtractor creates a new AnchorExtractor.
func NewAnchorExtractor() *AnchorExtractor {
	return &AnchorExtractor{}
}

// ExtractAnchors returns the document's anchors in document order with
// their trimmed visible text. Anchors without an href and non-HTTP link
// schemes (javascript:, mailto:, tel:, data:) are skipped.
func (e *AnchorExtractor) ExtractAnchors(markup string) ([]pagetext.Anchor, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, pagetext.Errorf(pagetext.EINVALID, "failed to parse HTML: %v", err)
	}

	var anchors []pagetext.Anchor
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}

		if isNonHTTPLink(href) {
			return
		}

		anchors = append(anchors, pagetext.Anchor{
			Href: href,
			Text: strings.TrimSpace(sel.Text()),
		})
	})

	return anchors, nil
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
