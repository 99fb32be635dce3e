package parser

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/kynessa/sqlfront/ast"
)

func TestSetStatementWithTo(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("SET SESSION search_path TO public")
	assert.NoError(t, err)
	assert.Equal(t, ast.KindUtilityStmt, root.Kind)
	assert.Equal(t, "SET", root.Primary)
	assert.Equal(t, "SESSION", root.Secondary)
	assert.Equal(t, "search_path", root.ChildAt(0).Primary)
}

func TestSetStatementWithEquals(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("SET timezone = 'UTC'")
	assert.NoError(t, err)
	assert.Equal(t, "SET", root.Primary)
	assert.Equal(t, "", root.Secondary)
}

func TestVacuumFullWithTable(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("VACUUM FULL t")
	assert.NoError(t, err)
	assert.Equal(t, ast.KindUtilityStmt, root.Kind)
	assert.Equal(t, "VACUUM", root.Primary)
	assert.Equal(t, "FULL", root.Secondary)
	assert.Equal(t, "t", root.ChildAt(0).Primary)
}

func TestAnalyzeStandalone(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("ANALYZE t")
	assert.NoError(t, err)
	assert.Equal(t, "ANALYZE", root.Primary)
	assert.Equal(t, "t", root.ChildAt(0).Primary)
}

func TestAttachDetach(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("ATTACH DATABASE 'file.db' AS aux")
	assert.NoError(t, err)
	assert.Equal(t, "ATTACH", root.Primary)
	assert.Equal(t, "aux", root.ChildAt(1).Primary)

	p2 := newTestParser()
	root2, err := p2.Parse("DETACH aux")
	assert.NoError(t, err)
	assert.Equal(t, "DETACH", root2.Primary)
	assert.Equal(t, "aux", root2.ChildAt(0).Primary)
}

func TestReindexTable(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("REINDEX TABLE t")
	assert.NoError(t, err)
	assert.Equal(t, "REINDEX", root.Primary)
	assert.Equal(t, "TABLE", root.Secondary)
	assert.Equal(t, "t", root.ChildAt(0).Primary)
}

func TestPragmaWithEqualsAndParens(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("PRAGMA foreign_keys = 1")
	assert.NoError(t, err)
	assert.Equal(t, "PRAGMA", root.Primary)
	assert.Equal(t, "foreign_keys", root.ChildAt(0).Primary)
	assert.Equal(t, 2, root.ChildCount)

	p2 := newTestParser()
	root2, err := p2.Parse("PRAGMA cache_size(100)")
	assert.NoError(t, err)
	assert.Equal(t, 2, root2.ChildCount)
}
