package parser

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/kynessa/sqlfront/ast"
)

func TestWindowClauseNamedWindow(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("SELECT SUM(v) OVER w FROM t WINDOW w AS (PARTITION BY k)")
	assert.NoError(t, err)
	win := root.ChildAt(root.ChildCount - 1)
	assert.Equal(t, ast.KindWindowClause, win.Kind)
	named := win.ChildAt(0)
	assert.Equal(t, ast.KindNamedWindow, named.Kind)
	assert.Equal(t, "w", named.Primary)
	spec := named.ChildAt(0)
	assert.Equal(t, ast.KindWindowSpec, spec.Kind)
}

func TestOverReferencesNamedWindow(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("SELECT SUM(v) OVER w FROM t")
	assert.NoError(t, err)
	call := root.ChildAt(0).ChildAt(0).ChildAt(0)
	ref := call.ChildAt(1)
	assert.Equal(t, ast.KindIdentifier, ref.Kind)
	assert.Equal(t, "w", ref.Primary)
}

func TestFrameClauseUnboundedPreceding(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("SELECT SUM(v) OVER (ORDER BY t ROWS UNBOUNDED PRECEDING) FROM s")
	assert.NoError(t, err)
	call := root.ChildAt(0).ChildAt(0).ChildAt(0)
	spec := call.ChildAt(1)
	var frame *ast.Node
	for c := spec.FirstChild; c != nil; c = c.NextSibling {
		if c.Kind == ast.KindFrameClause {
			frame = c
		}
	}
	assert.NotZero(t, frame)
	assert.Equal(t, "ROWS", frame.Primary)
	assert.Equal(t, 1, frame.ChildCount)
	assert.Equal(t, string(ast.BoundUnboundedPreceding), frame.ChildAt(0).Secondary)
}

func TestFrameRangeBetweenFollowing(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("SELECT SUM(v) OVER (ORDER BY t RANGE BETWEEN CURRENT ROW AND 5 FOLLOWING) FROM s")
	assert.NoError(t, err)
	call := root.ChildAt(0).ChildAt(0).ChildAt(0)
	spec := call.ChildAt(1)
	var frame *ast.Node
	for c := spec.FirstChild; c != nil; c = c.NextSibling {
		if c.Kind == ast.KindFrameClause {
			frame = c
		}
	}
	assert.Equal(t, "RANGE", frame.Primary)
	assert.Equal(t, string(ast.BoundCurrentRow), frame.ChildAt(0).Secondary)
	assert.Equal(t, string(ast.BoundFollowing), frame.ChildAt(1).Secondary)
}
