package arena

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

type node struct {
	id   int
	name string
}

func TestArenaAllocateStablePointers(t *testing.T) {
	a := New[node](4)
	var ptrs []*node
	for i := 0; i < 10; i++ {
		n := a.Allocate()
		n.id = i
		ptrs = append(ptrs, n)
	}
	for i, p := range ptrs {
		assert.Equal(t, i, p.id)
	}
	assert.Equal(t, 10, a.Len())
}

func TestArenaResetReclaims(t *testing.T) {
	a := New[node](4)
	for i := 0; i < 20; i++ {
		a.Allocate()
	}
	assert.Equal(t, 20, a.Len())
	a.Reset()
	assert.Equal(t, 0, a.Len())
	n := a.Allocate()
	assert.Equal(t, 0, n.id) // zeroed after reset
	assert.Equal(t, 1, a.Len())
}

func TestArenaBytesResetsToZeroAfterGrowth(t *testing.T) {
	a := New[node](4)
	for i := 0; i < 300; i++ { // forces growSlab past the first 256-element slab
		a.Allocate()
	}
	assert.True(t, a.Bytes() > 0)
	a.Reset()
	assert.Equal(t, 0, a.Bytes())
}

func TestStringArenaCopyIndependentOfSource(t *testing.T) {
	sa := NewStringArena(8)
	buf := []byte("hello")
	copied := sa.Copy(string(buf))
	buf[0] = 'X'
	assert.Equal(t, "hello", copied)
}

func TestStringArenaResetInvalidatesLength(t *testing.T) {
	sa := NewStringArena(8)
	sa.Copy("abcdef")
	assert.Equal(t, 6, sa.Bytes())
	sa.Reset()
	assert.Equal(t, 0, sa.Bytes())
}
