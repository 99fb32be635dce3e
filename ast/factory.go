package ast

import (
	"github.com/kynessa/sqlfront/arena"
	"github.com/kynessa/sqlfront/tokenizer"
)

// Factory allocates nodes in an arena and assigns them monotonically
// increasing node IDs, stable within one parse (spec.md §3 invariant 3).
// A Factory is owned by exactly one parser instance; Reset invalidates
// every node it previously handed out.
type Factory struct {
	nodes   *arena.Arena[Node]
	strings *arena.StringArena
	nextID  int
}

// NewFactory creates a factory with a modest initial arena, grown
// geometrically as needed.
func NewFactory() *Factory {
	return &Factory{
		nodes:   arena.New[Node](512),
		strings: arena.NewStringArena(8192),
	}
}

// New allocates a zeroed node of the given kind and assigns it the next
// node ID. Link fields start nil/zero; callers attach children via
// (*Node).AddChild.
func (f *Factory) New(kind Kind) *Node {
	n := f.nodes.Allocate()
	*n = Node{Kind: kind, ID: f.nextID}
	f.nextID++
	return n
}

// NewAt is New plus a source position, used by productions that know
// their starting token up front.
func (f *Factory) NewAt(kind Kind, pos tokenizer.Position) *Node {
	n := f.New(kind)
	n.Position = pos
	return n
}

// CopyString copies s into the factory's string arena, decoupling the
// node's textual payload from the tokenizer's input buffer so it survives
// a Reset of the tokenizer (though not of the factory itself).
func (f *Factory) CopyString(s string) string {
	return f.strings.Copy(s)
}

// Reset reclaims every node and copied string allocated since the last
// Reset (or since the factory was created) and restarts node IDs at zero.
// Every *Node previously returned becomes invalid the instant Reset
// returns; spec.md §5 documents this as the caller's responsibility.
func (f *Factory) Reset() {
	f.nodes.Reset()
	f.strings.Reset()
	f.nextID = 0
}

// NodeCount reports how many nodes have been allocated since the last
// Reset.
func (f *Factory) NodeCount() int { return f.nodes.Len() }

// MemoryUsed estimates bytes currently committed to node storage and
// copied strings.
func (f *Factory) MemoryUsed() int { return f.nodes.Bytes() + f.strings.Bytes() }
