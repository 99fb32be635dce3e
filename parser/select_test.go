package parser

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/kynessa/sqlfront/ast"
)

func TestSelectStar(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("SELECT * FROM t")
	assert.NoError(t, err)
	item := root.ChildAt(0).ChildAt(0)
	assert.Equal(t, ast.KindStar, item.ChildAt(0).Kind)
}

func TestSelectQualifiedStar(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("SELECT t.* FROM t")
	assert.NoError(t, err)
	star := root.ChildAt(0).ChildAt(0).ChildAt(0)
	assert.Equal(t, ast.KindStar, star.Kind)
	assert.Equal(t, "t", star.Secondary)
}

func TestSelectAliasWithAndWithoutAs(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("SELECT a AS x, b y FROM t")
	assert.NoError(t, err)
	list := root.ChildAt(0)
	first := list.ChildAt(0)
	assert.True(t, first.Has(ast.FlagHasAlias))
	assert.Equal(t, "x", first.ChildAt(1).Primary)
	second := list.ChildAt(1)
	assert.True(t, second.Has(ast.FlagHasAlias))
	assert.Equal(t, "y", second.ChildAt(1).Primary)
}

func TestSelectEmptyListRejected(t *testing.T) {
	p := newTestParser()
	_, err := p.Parse("SELECT FROM t")
	assert.Error(t, err)
}

func TestJoinWithOnCondition(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("SELECT * FROM a JOIN b ON a.id = b.id")
	assert.NoError(t, err)
	from := root.ChildAt(1)
	join := from.ChildAt(0)
	assert.Equal(t, ast.KindJoinClause, join.Kind)
	assert.Equal(t, "INNER", join.Primary)
	assert.Equal(t, 3, join.ChildCount) // left, right, ON condition
}

func TestJoinUsing(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("SELECT * FROM a LEFT JOIN b USING (id)")
	assert.NoError(t, err)
	join := root.ChildAt(1).ChildAt(0)
	assert.Equal(t, "LEFT", join.Primary)
	using := join.ChildAt(2)
	assert.Equal(t, ast.KindUsingClause, using.Kind)
	assert.Equal(t, 1, using.ChildCount)
}

func TestJoinRequiresOnOrUsing(t *testing.T) {
	p := newTestParser()
	_, err := p.Parse("SELECT * FROM a JOIN b")
	assert.Error(t, err)
}

func TestCommaJoinFoldsToCrossJoin(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("SELECT * FROM a, b, c")
	assert.NoError(t, err)
	from := root.ChildAt(1)
	outer := from.ChildAt(0)
	assert.Equal(t, ast.KindJoinClause, outer.Kind)
	assert.Equal(t, "CROSS", outer.Primary)
	inner := outer.ChildAt(0)
	assert.Equal(t, ast.KindJoinClause, inner.Kind)
}

func TestLimitOffsetBothOrders(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("SELECT * FROM t LIMIT 10 OFFSET 5")
	assert.NoError(t, err)
	limit := root.ChildAt(root.ChildCount - 1)
	assert.Equal(t, ast.KindLimitClause, limit.Kind)
	assert.Equal(t, "LIMIT", limit.ChildAt(0).Primary)
	assert.Equal(t, "OFFSET", limit.ChildAt(1).Primary)

	p2 := newTestParser()
	root2, err := p2.Parse("SELECT * FROM t OFFSET 5 LIMIT 10")
	assert.NoError(t, err)
	limit2 := root2.ChildAt(root2.ChildCount - 1)
	assert.Equal(t, "OFFSET", limit2.ChildAt(0).Primary)
	assert.Equal(t, "LIMIT", limit2.ChildAt(1).Primary)
}

func TestParenthesizedSelectArmWithOwnOrderByLimit(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("(SELECT a FROM t ORDER BY a LIMIT 1) UNION SELECT a FROM u")
	assert.NoError(t, err)
	assert.Equal(t, ast.KindUnionStmt, root.Kind)
	assert.False(t, root.Has(ast.FlagAll))
	left := root.ChildAt(0)
	assert.Equal(t, ast.KindSelectStmt, left.Kind)
	assert.Equal(t, 4, left.ChildCount) // list, from, orderby, limit
}
