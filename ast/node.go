package ast

import "github.com/kynessa/sqlfront/tokenizer"

// Node is the single structural unit of the AST. Every construct is a
// Node; Kind selects which of the remaining fields are meaningful.
//
// Children form an intrusively linked list in source order via FirstChild
// / NextSibling; Parent and ChildCount are maintained by (*Node).AddChild
// so that every non-root node has exactly one parent and
// ChildCount always equals the length of the sibling chain reachable
// from FirstChild (spec.md §3 invariants 1-2).
type Node struct {
	Kind Kind
	ID   int

	// Primary is the canonical textual payload: operator symbol, function
	// name, literal lexeme, or identifier — a view into arena- or
	// tokenizer-owned memory (spec.md §3).
	Primary string

	// Secondary is an auxiliary slot whose meaning depends on Kind: a
	// schema/table qualifier, an alias, or (for FrameBound nodes) the
	// bound's FrameBoundKind label.
	Secondary string

	Flags         Flags
	SemanticFlags SemanticFlags
	Context       ContextHint

	Position tokenizer.Position

	Parent      *Node
	FirstChild  *Node
	NextSibling *Node
	ChildCount  int

	lastChild *Node // tail cache for O(1) append during construction
}

// AddChild appends child to n's child list in O(1), maintaining the
// parent back-pointer and ChildCount invariants. child must not already
// be attached elsewhere.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	child.Parent = n
	child.NextSibling = nil
	if n.lastChild == nil {
		n.FirstChild = child
	} else {
		n.lastChild.NextSibling = child
	}
	n.lastChild = child
	n.ChildCount++
}

// Children returns the node's children as a slice, in source order. It
// allocates; hot paths should walk FirstChild/NextSibling directly.
func (n *Node) Children() []*Node {
	out := make([]*Node, 0, n.ChildCount)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// ChildAt returns the i-th child (0-based), or nil if out of range.
func (n *Node) ChildAt(i int) *Node {
	if i < 0 {
		return nil
	}
	c := n.FirstChild
	for ; i > 0 && c != nil; i-- {
		c = c.NextSibling
	}
	return c
}

// Has reports whether a structural flag is set.
func (n *Node) Has(f Flags) bool { return n.Flags.Has(f) }

// HasSemantic reports whether a semantic flag is set.
func (n *Node) HasSemantic(f SemanticFlags) bool { return n.SemanticFlags.Has(f) }
