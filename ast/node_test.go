package ast

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestFactoryAssignsMonotonicIDs(t *testing.T) {
	f := NewFactory()
	a := f.New(KindSelectStmt)
	b := f.New(KindSelectList)
	c := f.New(KindColumnRef)
	assert.Equal(t, 0, a.ID)
	assert.Equal(t, 1, b.ID)
	assert.Equal(t, 2, c.ID)
}

func TestAddChildMaintainsInvariants(t *testing.T) {
	f := NewFactory()
	root := f.New(KindSelectList)
	var kids []*Node
	for i := 0; i < 5; i++ {
		c := f.New(KindColumnRef)
		root.AddChild(c)
		kids = append(kids, c)
	}
	assert.Equal(t, 5, root.ChildCount)

	i := 0
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		assert.Equal(t, kids[i], c)
		assert.Equal(t, root, c.Parent)
		i++
	}
	assert.Equal(t, 5, i)
}

func TestChildAtAndChildren(t *testing.T) {
	f := NewFactory()
	root := f.New(KindSelectList)
	a := f.New(KindColumnRef)
	b := f.New(KindColumnRef)
	root.AddChild(a)
	root.AddChild(b)

	assert.Equal(t, a, root.ChildAt(0))
	assert.Equal(t, b, root.ChildAt(1))
	assert.Equal(t, (*Node)(nil), root.ChildAt(2))
	assert.Equal(t, []*Node{a, b}, root.Children())
}

func TestFactoryResetRestartsIDsAndInvalidatesMemory(t *testing.T) {
	f := NewFactory()
	f.New(KindSelectStmt)
	f.New(KindSelectList)
	assert.Equal(t, 2, f.NodeCount())

	f.Reset()
	assert.Equal(t, 0, f.NodeCount())

	n := f.New(KindSelectStmt)
	assert.Equal(t, 0, n.ID)
}

func TestCopyStringSurvivesSourceMutation(t *testing.T) {
	f := NewFactory()
	buf := []byte("users")
	copied := f.CopyString(string(buf))
	buf[0] = 'X'
	assert.Equal(t, "users", copied)
}
