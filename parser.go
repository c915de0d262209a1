package pagetext

// Parser builds a content tree from cleaned markup.
// Implementations hide the underlying HTML parsing library.
type Parser interface {
	// Parse produces the root Node for markup. The markup is assumed to
	// have gone through a Preprocessor, so the removed tag families are
	// absent from the result.
	Parse(markup string) (*Node, error)
}

// AnchorExtractor lifts anchors from cleaned markup. Anchors are collected
// before pruning so a link reference survives even when its subtree does
// not.
type AnchorExtractor interface {
	ExtractAnchors(markup string) ([]Anchor, error)
}
