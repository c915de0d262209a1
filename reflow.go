package pagetext

import (
	"regexp"
	"strings"
)

// DefaultMaxWidth is the wrap width for reflowed text.
const DefaultMaxWidth = 80

var (
	// tokenPattern splits reflowed text into atomic units, in priority
	// order: a bracketed absolute-URL reference, a run of word
	// characters, or a single whitespace or punctuation character.
	// Anything else is dropped.
	tokenPattern = regexp.MustCompile(`\[https?://[^\s\]]+\]|\w+|[\s.,!?;()-]`)

	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// Reflow flattens the pruned tree to text, reinstates paragraph
// boundaries, splices bracketed link references after their anchor text,
// and wraps the result to maxWidth columns. A non-positive maxWidth falls
// back to DefaultMaxWidth.
func Reflow(root *Node, links *LinkMap, maxWidth int) string {
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}

	text := normalizeText(root.Text())
	text = insertParagraphBreaks(text, root.FindAll("p"))
	text = insertLinkRefs(text, links)

	return wrapTokens(tokenPattern.FindAllString(text, -1), maxWidth)
}

// normalizeText strips newlines, trims the ends, and collapses interior
// whitespace runs to a single space. Paragraph and anchor text go through
// the same normalization so the substring matches downstream keep holding.
func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "\n", "")
	s = strings.TrimSpace(s)
	return whitespaceRuns.ReplaceAllString(s, " ")
}

// insertParagraphBreaks wraps each paragraph's trimmed text with a leading
// and trailing line break inside the flattened text. Only the first
// occurrence of each paragraph is affected; empty paragraphs are skipped.
func insertParagraphBreaks(text string, paragraphs []*Node) string {
	for _, p := range paragraphs {
		pt := normalizeText(p.Text())
		if pt == "" {
			continue
		}
		text = strings.Replace(text, pt, "\n"+pt+"\n", 1)
	}
	return text
}

// insertLinkRefs places each reference token after its anchor's visible
// text, separated by a space. Every occurrence of the anchor text is
// annotated. Anchors with no visible text produce no insertion.
func insertLinkRefs(text string, links *LinkMap) string {
	if links == nil {
		return text
	}
	for _, e := range links.Entries() {
		anchor := normalizeText(e.Text)
		if anchor == "" {
			continue
		}
		text = strings.ReplaceAll(text, anchor, anchor+" "+e.Ref)
	}
	return text
}

// wrapTokens greedily packs tokens into lines of at most maxWidth
// characters. The running counter starts at one and leading whitespace is
// stripped from a token that opens a line; the counter always advances by
// the token's original length. A newline token resets the line and then
// still flows through the trailing append, which is what the closing
// collapse cleans up. A single token longer than maxWidth sits alone on
// its own line.
func wrapTokens(tokens []string, maxWidth int) string {
	var b strings.Builder
	length := 1

	for _, tok := range tokens {
		w := tok
		if length == 1 {
			w = strings.TrimLeft(tok, " \t\n\r\f\v")
		}
		length += len(tok)

		if w == "\n" {
			b.WriteString("\n")
			length = 1
		}

		if length > maxWidth {
			b.WriteString("\n")
			b.WriteString(w)
			length = len(w) + 1
		} else if length == maxWidth {
			b.WriteString(w)
			b.WriteString("\n")
			length = 1
		} else {
			b.WriteString(w)
		}
	}

	return collapseNewlines(b.String())
}

// collapseNewlines replaces runs of three or more newlines until none
// remain, so the output never contains a triple newline.
func collapseNewlines(s string) string {
	for strings.Contains(s, "\n\n\n") {
		s = strings.ReplaceAll(s, "\n\n\n", "\n")
	}
	return s
}
