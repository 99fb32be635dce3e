// Package arena implements the bump-allocated storage backing the parser's
// AST: one reset reclaims every node and copied string a parse produced.
// There are no per-node destructors — nodes are plain structs and are
// reclaimed in bulk, never individually.
package arena

import "unsafe"

// defaultSlabSize is the size, in nodes, of the first slab. Later slabs
// double, mirroring the geometric growth called for in spec.md §4.1.
const defaultSlabSize = 256

// Arena owns slabs of T and hands out stable pointers into them until
// Reset or Release is called. A zero Arena is not usable; use New.
type Arena[T any] struct {
	slabs    [][]T
	slabSize int
	cur      int // index of the slab currently being filled
	len      int // cleared by Reset and Release; Allocate does not update it
	count    int // total elements allocated since the last Reset
}

// New creates an arena whose first slab holds capacity elements (rounded
// up to defaultSlabSize if smaller or zero).
func New[T any](capacity int) *Arena[T] {
	if capacity < defaultSlabSize {
		capacity = defaultSlabSize
	}
	a := &Arena[T]{slabSize: capacity}
	a.slabs = append(a.slabs, make([]T, 0, capacity))
	return a
}

// Allocate returns a pointer to a freshly zeroed T living in the arena.
// The pointer remains valid until the next Reset or Release.
func (a *Arena[T]) Allocate() *T {
	slab := a.slabs[a.cur]
	if len(slab) == cap(slab) {
		a.growSlab()
		slab = a.slabs[a.cur]
	}
	slab = slab[:len(slab)+1]
	a.slabs[a.cur] = slab
	a.count++
	p := &slab[len(slab)-1]
	var zero T
	*p = zero // slots reused after Reset still hold their old values
	return p
}

func (a *Arena[T]) growSlab() {
	nextCap := cap(a.slabs[a.cur]) * 2
	if nextCap == 0 {
		nextCap = a.slabSize
	}
	a.slabs = append(a.slabs, make([]T, 0, nextCap))
	a.cur++
}

// Len reports how many elements have been allocated since the last Reset.
func (a *Arena[T]) Len() int { return a.count }

// Bytes estimates the memory occupied by elements allocated since the
// last Reset, mirroring StringArena.Bytes: it tracks live usage rather
// than slab capacity, so it returns to zero immediately after Reset
// instead of reflecting however large the slabs have grown to hold a
// prior parse's peak.
func (a *Arena[T]) Bytes() int {
	var zero T
	size := int(unsafe.Sizeof(zero))
	return a.count * size
}

// Reset reclaims every allocated element for reuse without releasing the
// underlying slabs back to the OS. Any pointer returned by a previous
// Allocate becomes invalid the moment Reset is called — the arena makes
// no attempt to detect or prevent continued use of such a pointer, per
// the documented lifecycle in spec.md §5.
func (a *Arena[T]) Reset() {
	for i := range a.slabs {
		a.slabs[i] = a.slabs[i][:0]
	}
	a.cur = 0
	a.len = 0
	a.count = 0
}

// Release drops every slab, freeing the backing storage for GC. The
// arena must not be used again afterward except via a fresh New.
func (a *Arena[T]) Release() {
	a.slabs = nil
	a.cur = 0
	a.len = 0
	a.count = 0
}

