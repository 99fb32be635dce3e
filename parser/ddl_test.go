package parser

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/kynessa/sqlfront/ast"
)

func TestCreateTableColumnsAndConstraints(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse(`CREATE TABLE IF NOT EXISTS t (
		id INT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT 'x',
		UNIQUE (name)
	)`)
	assert.NoError(t, err)
	assert.Equal(t, ast.KindCreateTableStmt, root.Kind)
	assert.True(t, root.Has(ast.FlagIfNotExists))

	name := root.ChildAt(0)
	assert.Equal(t, "t", name.Primary)

	id := root.ChildAt(1)
	assert.Equal(t, ast.KindColumnDef, id.Kind)
	assert.Equal(t, "id", id.Primary)
	assert.Equal(t, "PRIMARY KEY", id.ChildAt(1).Primary)

	nameCol := root.ChildAt(2)
	assert.Equal(t, "NOT NULL", nameCol.ChildAt(1).Primary)
	assert.Equal(t, "DEFAULT", nameCol.ChildAt(2).Primary)

	uq := root.ChildAt(3)
	assert.Equal(t, ast.KindTableConstraint, uq.Kind)
	assert.Equal(t, "UNIQUE", uq.Primary)
}

func TestCreateTableForeignKey(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("CREATE TABLE t (a INT REFERENCES u(id))")
	assert.NoError(t, err)
	col := root.ChildAt(1)
	ref := col.ChildAt(1)
	assert.Equal(t, "REFERENCES", ref.Primary)
	assert.Equal(t, "u", ref.ChildAt(0).Primary)
}

func TestCreateIndexUniqueWithOrder(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("CREATE UNIQUE INDEX idx ON t (a, b DESC) WHERE a IS NOT NULL")
	assert.NoError(t, err)
	assert.Equal(t, ast.KindCreateIndexStmt, root.Kind)
	assert.True(t, root.Has(ast.FlagUnique))
	cols := root.ChildAt(2)
	assert.Equal(t, 2, cols.ChildCount)
	assert.True(t, cols.ChildAt(1).HasSemantic(ast.FlagDesc))
	where := root.ChildAt(3)
	assert.Equal(t, ast.KindWhereClause, where.Kind)
}

func TestCreateViewWithColumnList(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("CREATE VIEW v (a, b) AS SELECT x, y FROM t")
	assert.NoError(t, err)
	assert.Equal(t, ast.KindCreateViewStmt, root.Kind)
	cols := root.ChildAt(1)
	assert.Equal(t, 2, cols.ChildCount)
	body := root.ChildAt(2)
	assert.Equal(t, ast.KindSelectStmt, body.Kind)
}

func TestCreateTriggerBeforeInsert(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("CREATE TRIGGER trg BEFORE INSERT ON t FOR EACH ROW WHEN (a > 0) DELETE FROM u")
	assert.NoError(t, err)
	assert.Equal(t, ast.KindCreateTriggerStmt, root.Kind)
	assert.Equal(t, "trg", root.Primary)
	assert.Equal(t, "BEFORE", root.Secondary)
	events := root.ChildAt(0)
	assert.Equal(t, 1, events.ChildCount)
	assert.Equal(t, "INSERT", events.ChildAt(0).Primary)
}

func TestDropTableIfExistsCascade(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("DROP TABLE IF EXISTS a, b CASCADE")
	assert.NoError(t, err)
	assert.Equal(t, ast.KindDropStmt, root.Kind)
	assert.Equal(t, "TABLE", root.Primary)
	assert.True(t, root.Has(ast.FlagIfExists))
	assert.True(t, root.Has(ast.FlagCascade))
	names := root.ChildAt(0)
	assert.Equal(t, 2, names.ChildCount)
}

func TestAlterTableAddColumn(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("ALTER TABLE t ADD COLUMN a INT")
	assert.NoError(t, err)
	assert.Equal(t, ast.KindAlterTableStmt, root.Kind)
	action := root.ChildAt(1)
	assert.Equal(t, "ADD COLUMN", action.Primary)
}

func TestAlterTableRenameColumn(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("ALTER TABLE t RENAME COLUMN a TO b")
	assert.NoError(t, err)
	action := root.ChildAt(1)
	assert.Equal(t, "RENAME COLUMN", action.Primary)
	assert.Equal(t, "a", action.ChildAt(0).Primary)
	assert.Equal(t, "b", action.ChildAt(1).Primary)
}

func TestAlterTableRenameTo(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("ALTER TABLE t RENAME TO u")
	assert.NoError(t, err)
	action := root.ChildAt(1)
	assert.Equal(t, "RENAME TO", action.Primary)
	assert.Equal(t, "u", action.ChildAt(0).Primary)
}

func TestAlterTableAlterColumnType(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("ALTER TABLE t ALTER COLUMN a TYPE TEXT")
	assert.NoError(t, err)
	action := root.ChildAt(1)
	assert.Equal(t, "ALTER COLUMN", action.Primary)
}

func TestTruncateMultipleWithRestartIdentity(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("TRUNCATE TABLE a, b RESTART IDENTITY CASCADE")
	assert.NoError(t, err)
	assert.Equal(t, ast.KindTruncateStmt, root.Kind)
	assert.Equal(t, "RESTART IDENTITY", root.Secondary)
	assert.True(t, root.Has(ast.FlagCascade))
	names := root.ChildAt(0)
	assert.Equal(t, 2, names.ChildCount)
}

func TestTransactionBeginAndCommit(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("BEGIN")
	assert.NoError(t, err)
	assert.Equal(t, ast.KindTransactionStmt, root.Kind)
	assert.Equal(t, "BEGIN", root.Primary)

	p2 := newTestParser()
	root2, err := p2.Parse("COMMIT")
	assert.NoError(t, err)
	assert.Equal(t, "COMMIT", root2.Primary)
}

func TestTransactionRollbackToSavepoint(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("ROLLBACK TO SAVEPOINT sp1")
	assert.NoError(t, err)
	assert.Equal(t, "ROLLBACK", root.Primary)
	assert.Equal(t, "sp1", root.ChildAt(0).Primary)
}

func TestTransactionSavepointAndRelease(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("SAVEPOINT sp1")
	assert.NoError(t, err)
	assert.Equal(t, "SAVEPOINT", root.Primary)
	assert.Equal(t, "sp1", root.ChildAt(0).Primary)

	p2 := newTestParser()
	root2, err := p2.Parse("RELEASE SAVEPOINT sp1")
	assert.NoError(t, err)
	assert.Equal(t, "RELEASE", root2.Primary)
}

func TestExplainAnalyzeVerbose(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("EXPLAIN ANALYZE VERBOSE SELECT * FROM t")
	assert.NoError(t, err)
	assert.Equal(t, ast.KindExplainStmt, root.Kind)
	assert.Equal(t, "ANALYZE VERBOSE", root.Secondary)
	assert.Equal(t, ast.KindSelectStmt, root.ChildAt(0).Kind)
}
