package mock

import "github.com/LenAngliChan/pagetext"

var _ pagetext.Parser = (*Parser)(nil)

// Parser is a mock implementation of pagetext.Parser.
type Parser struct {
	ParseFn func(markup string) (*pagetext.Node, error)
}

func (p *Parser) Parse(markup string) (*pagetext.Node, error) {
	return p.ParseFn(markup)
}

var _ pagetext.AnchorExtractor = (*AnchorExtractor)(nil)

// AnchorExtractor is a mock implementation of pagetext.AnchorExtractor.
type AnchorExtractor struct {
	ExtractAnchorsFn func(markup string) ([]pagetext.Anchor, error)
}

func (e *AnchorExtractor) ExtractAnchors(markup string) ([]pagetext.Anchor, error) {
	return e.ExtractAnchorsFn(markup)
}
