package parser

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/kynessa/sqlfront/ast"
)

func TestQualifiedColumnRef(t *testing.T) {
	n := parseExprString(t, "t.a")
	assert.Equal(t, ast.KindColumnRef, n.Kind)
	assert.Equal(t, "a", n.Primary)
	assert.Equal(t, "t", n.Secondary)
}

func TestBareIdentifier(t *testing.T) {
	n := parseExprString(t, "a")
	assert.Equal(t, ast.KindIdentifier, n.Kind)
	assert.Equal(t, "a", n.Primary)
}

func TestFunctionCallNoArgs(t *testing.T) {
	n := parseExprString(t, "NOW()")
	assert.Equal(t, ast.KindFunctionCall, n.Kind)
	assert.Equal(t, "NOW", n.Primary)
	args := n.ChildAt(0)
	assert.Equal(t, 0, args.ChildCount)
}

func TestFunctionCallCountStar(t *testing.T) {
	n := parseExprString(t, "COUNT(*)")
	args := n.ChildAt(0)
	assert.Equal(t, 1, args.ChildCount)
	assert.Equal(t, ast.KindStar, args.ChildAt(0).Kind)
}

func TestFunctionCallQualifiedName(t *testing.T) {
	n := parseExprString(t, "pg_catalog.now()")
	assert.Equal(t, "now", n.Primary)
	assert.Equal(t, "pg_catalog", n.Secondary)
}

func TestFunctionCallFilterClause(t *testing.T) {
	n := parseExprString(t, "COUNT(*) FILTER (WHERE a > 0)")
	var filter *ast.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Kind == ast.KindWhereClause {
			filter = c
		}
	}
	assert.NotZero(t, filter)
}
