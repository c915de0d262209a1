package pagetext

// DefaultCoefficient scales the sum of sibling depths into the removal
// threshold.
const DefaultCoefficient = 0.5

// forcedParagraphMin is the paragraph-descendant count above which forced
// mode protects a subtree from removal.
const forcedParagraphMin = 3

// Pruner removes low-density subtrees from a content tree. Depth of a
// subtree is the content-richness signal: at each sibling scope, nodes
// whose depth falls below Coefficient times the sum of all sibling depths
// are judged clutter and detached.
type Pruner struct {
	// Coefficient scales the sum of sibling depths into the removal
	// threshold. The heuristic is deliberately sum-based, not a mean;
	// substituting a true mean changes extraction results.
	Coefficient float64

	// Forced additionally protects any subtree containing more than
	// three paragraph descendants.
	Forced bool
}

// NewPruner returns a Pruner with the default coefficient and forced mode
// enabled.
func NewPruner() *Pruner {
	return &Pruner{Coefficient: DefaultCoefficient, Forced: true}
}

// Prune walks the tree starting from root's immediate element children and
// removes sibling subtrees judged too shallow for their scope. The tree is
// mutated in place and returned. Paragraphs, h1/h2 headings, nodes with an
// h1 descendant, and (in forced mode) nodes with more than three paragraph
// descendants are never removed.
func (p *Pruner) Prune(root *Node) *Node {
	p.pruneScope(root.Elements())
	return root
}

// pruneScope runs the removal pass over one sibling set, then recurses into
// each survivor's element children. The density map is rebuilt fresh at
// every level: removal invalidates any previously computed scope, so no
// index survives a mutation boundary.
func (p *Pruner) pruneScope(siblings []*Node) {
	if len(siblings) == 0 {
		return
	}

	density := densities(siblings)

	sum := 0
	for _, d := range density {
		sum += d
	}
	threshold := p.Coefficient * float64(sum)

	for _, node := range siblings {
		if p.protected(node) {
			continue
		}
		if float64(density[node]) < threshold {
			node.Remove()
		}
	}

	for _, node := range siblings {
		if node.Parent == nil {
			continue // removed above
		}
		p.pruneScope(node.Elements())
	}
}

// densities maps each sibling to its depth. Keys are node identities;
// pointer identity is stable for the life of the run, so detached nodes
// cannot dangle.
func densities(siblings []*Node) map[*Node]int {
	density := make(map[*Node]int, len(siblings))
	for _, node := range siblings {
		density[node] = node.Depth()
	}
	return density
}

// protected reports whether node is exempt from removal regardless of its
// depth.
func (p *Pruner) protected(node *Node) bool {
	switch node.Tag {
	case "p", "h1", "h2":
		return true
	}
	if node.Find("h1") != nil {
		return true
	}
	if p.Forced && len(node.FindAll("p")) > forcedParagraphMin {
		return true
	}
	return false
}
