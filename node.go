package pagetext

import "strings"

// NodeType identifies the kind of a Node.
type NodeType int

// Node kinds.
const (
	ElementNode NodeType = iota
	TextNode
)

// Node is an element of the parsed content tree. A parent exclusively owns
// its children; no node is shared across trees. Tag names are lowercase.
type Node struct {
	Type     NodeType
	Tag      string            // empty for text nodes
	Attr     map[string]string // nil when the element carries no attributes
	Data     string            // text content, set only for text nodes
	Parent   *Node
	Children []*Node
}

// NewElement returns a detached element node with the given tag.
func NewElement(tag string) *Node {
	return &Node{Type: ElementNode, Tag: tag}
}

// NewText returns a detached text node with the given content.
func NewText(data string) *Node {
	return &Node{Type: TextNode, Data: data}
}

// AppendChild appends child to n, taking ownership of it.
func (n *Node) AppendChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// Remove detaches n and its entire subtree from its parent. The operation
// is terminal: a removed subtree is never reattached within a run.
// Removing a node that has no parent is a no-op.
func (n *Node) Remove() {
	p := n.Parent
	if p == nil {
		return
	}
	for i, c := range p.Children {
		if c == n {
			p.Children = append(p.Children[:i], p.Children[i+1:]...)
			break
		}
	}
	n.Parent = nil
}

// Elements returns n's element children in document order.
func (n *Node) Elements() []*Node {
	var elems []*Node
	for _, c := range n.Children {
		if c.Type == ElementNode {
			elems = append(elems, c)
		}
	}
	return elems
}

// Text returns the concatenated text content of n and its descendants in
// document order.
func (n *Node) Text() string {
	var b strings.Builder
	n.writeText(&b)
	return b.String()
}

func (n *Node) writeText(b *strings.Builder) {
	if n.Type == TextNode {
		b.WriteString(n.Data)
		return
	}
	for _, c := range n.Children {
		c.writeText(b)
	}
}

// Find returns the first descendant element with the given tag in
// depth-first document order, or nil if there is none.
func (n *Node) Find(tag string) *Node {
	for _, c := range n.Children {
		if c.Type != ElementNode {
			continue
		}
		if c.Tag == tag {
			return c
		}
		if found := c.Find(tag); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant element with the given tag in
// depth-first document order.
func (n *Node) FindAll(tag string) []*Node {
	var found []*Node
	n.findAll(tag, &found)
	return found
}

func (n *Node) findAll(tag string, found *[]*Node) {
	for _, c := range n.Children {
		if c.Type != ElementNode {
			continue
		}
		if c.Tag == tag {
			*found = append(*found, c)
		}
		c.findAll(tag, found)
	}
}

// Depth returns the height of n's subtree counted over element children:
// zero when n has no element children, otherwise one plus the maximum
// child depth. Text nodes never contribute.
func (n *Node) Depth() int {
	deepest := -1
	for _, c := range n.Children {
		if c.Type != ElementNode {
			continue
		}
		if d := c.Depth(); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}
