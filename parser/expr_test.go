package parser

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/kynessa/sqlfront/ast"
)

func parseExprString(t *testing.T, expr string) *ast.Node {
	t.Helper()
	p := newTestParser()
	root, err := p.Parse("SELECT " + expr)
	assert.NoError(t, err)
	return root.ChildAt(0).ChildAt(0).ChildAt(0)
}

func TestPrecedenceMulOverAdd(t *testing.T) {
	n := parseExprString(t, "1 + 2 * 3")
	assert.Equal(t, ast.KindBinaryExpr, n.Kind)
	assert.Equal(t, "+", n.Primary)
	rhs := n.ChildAt(1)
	assert.Equal(t, "*", rhs.Primary)
}

func TestPrecedenceAndOverOr(t *testing.T) {
	n := parseExprString(t, "a OR b AND c")
	assert.Equal(t, "OR", n.Primary)
	rhs := n.ChildAt(1)
	assert.Equal(t, "AND", rhs.Primary)
}

func TestExponentiationRightAssociative(t *testing.T) {
	n := parseExprString(t, "2 ^ 3 ^ 2")
	assert.Equal(t, "^", n.Primary)
	rhs := n.ChildAt(1)
	assert.Equal(t, "^", rhs.Primary)
}

func TestAdditionLeftAssociative(t *testing.T) {
	n := parseExprString(t, "1 - 2 - 3")
	assert.Equal(t, "-", n.Primary)
	lhs := n.ChildAt(0)
	assert.Equal(t, "-", lhs.Primary)
}

func TestBetweenExpression(t *testing.T) {
	n := parseExprString(t, "a BETWEEN 1 AND 10")
	assert.Equal(t, ast.KindBetweenExpr, n.Kind)
	assert.False(t, n.HasSemantic(ast.FlagNot))
	assert.Equal(t, 3, n.ChildCount)
}

func TestNotBetween(t *testing.T) {
	n := parseExprString(t, "a NOT BETWEEN 1 AND 10")
	assert.Equal(t, ast.KindBetweenExpr, n.Kind)
	assert.True(t, n.HasSemantic(ast.FlagNot))
}

func TestPrefixNotIsLogicalNegation(t *testing.T) {
	n := parseExprString(t, "NOT a")
	assert.Equal(t, ast.KindUnaryExpr, n.Kind)
	assert.Equal(t, "NOT", n.Primary)
}

func TestInList(t *testing.T) {
	n := parseExprString(t, "a IN (1, 2, 3)")
	assert.Equal(t, ast.KindInExpr, n.Kind)
	list := n.ChildAt(1)
	assert.Equal(t, ast.KindList, list.Kind)
	assert.Equal(t, 3, list.ChildCount)
}

func TestInSubquery(t *testing.T) {
	n := parseExprString(t, "a IN (SELECT id FROM t)")
	assert.Equal(t, ast.KindInExpr, n.Kind)
	sub := n.ChildAt(1)
	assert.Equal(t, ast.KindSubqueryExpr, sub.Kind)
}

func TestNotIn(t *testing.T) {
	n := parseExprString(t, "a NOT IN (1, 2)")
	assert.Equal(t, ast.KindInExpr, n.Kind)
	assert.True(t, n.HasSemantic(ast.FlagNot))
}

func TestLikeAndNotLike(t *testing.T) {
	n := parseExprString(t, "a LIKE '%x%'")
	assert.Equal(t, ast.KindLikeExpr, n.Kind)
	assert.Equal(t, "LIKE", n.Primary)
	assert.False(t, n.HasSemantic(ast.FlagNot))

	n2 := parseExprString(t, "a NOT LIKE '%x%'")
	assert.True(t, n2.HasSemantic(ast.FlagNot))
}

func TestIsNullAndIsNotNull(t *testing.T) {
	n := parseExprString(t, "a IS NULL")
	assert.Equal(t, ast.KindIsNullExpr, n.Kind)
	assert.False(t, n.HasSemantic(ast.FlagNot))

	n2 := parseExprString(t, "a IS NOT NULL")
	assert.True(t, n2.HasSemantic(ast.FlagNot))
}

func TestIsDistinctFrom(t *testing.T) {
	n := parseExprString(t, "a IS DISTINCT FROM b")
	assert.Equal(t, ast.KindIsDistinctExpr, n.Kind)
	assert.False(t, n.HasSemantic(ast.FlagNot))
}

func TestExistsSubquery(t *testing.T) {
	n := parseExprString(t, "EXISTS (SELECT 1 FROM t)")
	assert.Equal(t, ast.KindExistsExpr, n.Kind)
	assert.False(t, n.HasSemantic(ast.FlagNot))
	sub := n.ChildAt(0)
	assert.Equal(t, ast.KindSubqueryExpr, sub.Kind)
}

func TestNotExistsSetsFlagRatherThanWrapping(t *testing.T) {
	n := parseExprString(t, "NOT EXISTS (SELECT 1 FROM t)")
	assert.Equal(t, ast.KindExistsExpr, n.Kind)
	assert.True(t, n.HasSemantic(ast.FlagNot))
	sub := n.ChildAt(0)
	assert.Equal(t, ast.KindSubqueryExpr, sub.Kind)
}

func TestCastPostfix(t *testing.T) {
	n := parseExprString(t, "a::int")
	assert.Equal(t, ast.KindCastExpr, n.Kind)
}

func TestSubscriptPostfix(t *testing.T) {
	n := parseExprString(t, "a[1]")
	assert.Equal(t, ast.KindBinaryExpr, n.Kind)
	assert.Equal(t, "[]", n.Primary)
}

func TestUnaryMinus(t *testing.T) {
	n := parseExprString(t, "-a")
	assert.Equal(t, ast.KindUnaryExpr, n.Kind)
	assert.Equal(t, "-", n.Primary)
}

func TestJSONOperatorPrecedenceAboveComparison(t *testing.T) {
	n := parseExprString(t, "a -> 'k' = 'v'")
	assert.Equal(t, "=", n.Primary)
	lhs := n.ChildAt(0)
	assert.Equal(t, "->", lhs.Primary)
}
