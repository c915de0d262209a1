package pagetext

import (
	"regexp"
	"strings"
)

// Anchor is a hyperlink lifted from the document before pruning: the href
// attribute and the anchor's visible text.
type Anchor struct {
	Href string
	Text string
}

// LinkEntry pairs a bracketed reference token with the anchor text it
// annotates.
type LinkEntry struct {
	Ref  string // e.g. "[https://example.com/about]"
	Text string
}

// LinkMap is an ordered mapping from reference token to anchor text.
// A later entry with a colliding token overwrites the earlier value but
// keeps its original position.
type LinkMap struct {
	entries []LinkEntry
	index   map[string]int
}

// NewLinkMap returns an empty LinkMap.
func NewLinkMap() *LinkMap {
	return &LinkMap{index: make(map[string]int)}
}

// Set records the anchor text for a reference token, overwriting any
// earlier entry with the same token.
func (m *LinkMap) Set(ref, text string) {
	if i, ok := m.index[ref]; ok {
		m.entries[i].Text = text
		return
	}
	m.index[ref] = len(m.entries)
	m.entries = append(m.entries, LinkEntry{Ref: ref, Text: text})
}

// Get returns the anchor text for a reference token.
func (m *LinkMap) Get(ref string) (string, bool) {
	i, ok := m.index[ref]
	if !ok {
		return "", false
	}
	return m.entries[i].Text, true
}

// Entries returns the entries in insertion order.
func (m *LinkMap) Entries() []LinkEntry {
	return m.entries
}

// Len returns the number of entries.
func (m *LinkMap) Len() int {
	return len(m.entries)
}

var domainPattern = regexp.MustCompile(`^https?://[^/]+`)

// Domain extracts the scheme://host prefix of pageURL. Returns EINVALID if
// pageURL does not start with an http or https scheme.
func Domain(pageURL string) (string, error) {
	domain := domainPattern.FindString(pageURL)
	if domain == "" {
		return "", Errorf(EINVALID, "malformed page URL %q: missing http(s) scheme", pageURL)
	}
	return domain, nil
}

// ResolveLinks builds the ordered reference-token mapping for a page's
// anchors. An href that is already absolute (http or https) is bracketed
// as-is; a relative href is qualified with the page's scheme://host prefix
// first. Anchors without an href produce no entry.
func ResolveLinks(anchors []Anchor, pageURL string) (*LinkMap, error) {
	domain, err := Domain(pageURL)
	if err != nil {
		return nil, err
	}

	links := NewLinkMap()
	for _, a := range anchors {
		if a.Href == "" {
			continue
		}
		href := a.Href
		if !strings.HasPrefix(href, "http") {
			href = domain + href
		}
		links.Set("["+href+"]", a.Text)
	}

	return links, nil
}
