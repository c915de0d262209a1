package pagetext

import (
	"fmt"
	"regexp"
)

// DefaultRemovedTags lists the paired tag families the Preprocessor strips
// from raw markup before parsing. The void meta tag is always removed in
// addition to these.
var DefaultRemovedTags = []string{"script", "style", "ul", "nav", "footer", "header", "form"}

// Preprocessor removes whole tag families from raw markup by textual
// substitution, before any tree is built. Downstream components assume the
// removed families are absent from the parsed tree.
type Preprocessor struct {
	patterns []*regexp.Regexp
}

// NewPreprocessor compiles removal patterns for the given paired tags plus
// the void meta tag. With no arguments it uses DefaultRemovedTags.
func NewPreprocessor(tags ...string) *Preprocessor {
	if len(tags) == 0 {
		tags = DefaultRemovedTags
	}

	patterns := make([]*regexp.Regexp, 0, len(tags)+1)
	for _, tag := range tags {
		// Open tag through matching close tag, nested content included.
		patterns = append(patterns, regexp.MustCompile(fmt.Sprintf(`(?is)<%[1]s\b.*?</%[1]s\s*>`, regexp.QuoteMeta(tag))))
	}
	patterns = append(patterns, regexp.MustCompile(`(?is)<meta\b.*?>`))

	return &Preprocessor{patterns: patterns}
}

// Preprocess returns markup with the configured tag families removed.
// A pattern that matches zero times is not an error.
func (p *Preprocessor) Preprocess(markup string) string {
	for _, re := range p.patterns {
		markup = re.ReplaceAllString(markup, "")
	}
	return markup
}
