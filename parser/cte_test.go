package parser

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/kynessa/sqlfront/ast"
)

func findWithClause(root *ast.Node) *ast.Node {
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Kind == ast.KindWithClause {
			return c
		}
	}
	return nil
}

func TestCTEWithColumnList(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("WITH n(a, b) AS (SELECT 1, 2) SELECT * FROM n")
	assert.NoError(t, err)
	assert.Equal(t, ast.KindSelectStmt, root.Kind)

	with := findWithClause(root)
	assert.NotZero(t, with)
	assert.False(t, with.Has(ast.FlagRecursive))

	cte := with.ChildAt(0)
	assert.Equal(t, "n", cte.Primary)
	cols := cte.ChildAt(0)
	assert.Equal(t, ast.KindList, cols.Kind)
	assert.Equal(t, 2, cols.ChildCount)
	body := cte.ChildAt(1)
	assert.Equal(t, ast.KindSelectStmt, body.Kind)
}

func TestCTEMultipleDefinitions(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("WITH a AS (SELECT 1), b AS (SELECT 2) SELECT * FROM a, b")
	assert.NoError(t, err)
	assert.Equal(t, ast.KindSelectStmt, root.Kind)

	with := findWithClause(root)
	assert.NotZero(t, with)
	assert.Equal(t, 2, with.ChildCount)
	assert.Equal(t, ast.KindCTEDefinition, with.ChildAt(0).Kind)
	assert.Equal(t, ast.KindCTEDefinition, with.ChildAt(1).Kind)
}

func TestCTEFeedingInsert(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("WITH src AS (SELECT 1 AS a) INSERT INTO t (a) SELECT a FROM src")
	assert.NoError(t, err)
	assert.Equal(t, ast.KindInsertStmt, root.Kind)

	with := findWithClause(root)
	assert.NotZero(t, with)
	cte := with.ChildAt(0)
	assert.Equal(t, ast.KindCTEDefinition, cte.Kind)
	assert.Equal(t, "src", cte.Primary)
}
