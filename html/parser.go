// Package html provides an x/net/html-backed implementation of
// pagetext.Parser.
package html

import (
	"strings"

	"github.com/LenAngliChan/pagetext"
	"golang.org/x/net/html"
)

// Ensure Parser implements pagetext.Parser at compile time.
var _ pagetext.Parser = (*Parser)(nil)

// Parser builds content trees using golang.org/x/net/html.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse produces the content tree for markup. The returned root is an
// untagged node owning the document's top-level elements. Tag names arrive
// lowercased from the tokenizer; text nodes are kept verbatim (including
// whitespace-only runs, so inter-element spacing survives flattening);
// comments and doctypes are dropped.
func (p *Parser) Parse(markup string) (*pagetext.Node, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, pagetext.Errorf(pagetext.EINVALID, "failed to parse HTML: %v", err)
	}

	root := &pagetext.Node{Type: pagetext.ElementNode}
	convert(doc, root)
	return root, nil
}

// convert copies src's children onto dst, depth first.
func convert(src *html.Node, dst *pagetext.Node) {
	for c := src.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			el := pagetext.NewElement(c.Data)
			if len(c.Attr) > 0 {
				el.Attr = make(map[string]string, len(c.Attr))
				for _, a := range c.Attr {
					el.Attr[a.Key] = a.Val
				}
			}
			dst.AppendChild(el)
			convert(c, el)
		case html.TextNode:
			dst.AppendChild(pagetext.NewText(c.Data))
		}
	}
}
