package parser

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/kynessa/sqlfront/ast"
)

func TestOrderByNullsFirstAndLast(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("SELECT a FROM t ORDER BY a NULLS FIRST, b DESC NULLS LAST")
	assert.NoError(t, err)
	ob := root.ChildAt(2)
	assert.Equal(t, ast.KindOrderByClause, ob.Kind)
	first := ob.ChildAt(0)
	assert.True(t, first.HasSemantic(ast.FlagNullsFirst))
	assert.False(t, first.HasSemantic(ast.FlagDesc))

	second := ob.ChildAt(1)
	assert.True(t, second.HasSemantic(ast.FlagDesc))
	assert.True(t, second.HasSemantic(ast.FlagNullsLast))
}

func TestOrderByPlainAscDefault(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("SELECT a FROM t ORDER BY a")
	assert.NoError(t, err)
	ob := root.ChildAt(2)
	item := ob.ChildAt(0)
	assert.False(t, item.HasSemantic(ast.FlagDesc))
	assert.False(t, item.HasSemantic(ast.FlagNullsFirst))
	assert.False(t, item.HasSemantic(ast.FlagNullsLast))
}

func TestOrderByInsideOrderedSetAggregate(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("SELECT STRING_AGG(a ORDER BY a DESC) FROM t")
	assert.NoError(t, err)
	call := root.ChildAt(0).ChildAt(0).ChildAt(0)
	assert.Equal(t, ast.KindFunctionCall, call.Kind)
	ob := call.ChildAt(1)
	assert.Equal(t, ast.KindOrderByClause, ob.Kind)
	assert.True(t, ob.ChildAt(0).HasSemantic(ast.FlagDesc))
}
