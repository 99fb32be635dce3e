package parser

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/kynessa/sqlfront/ast"
)

func TestIntegerLiteral(t *testing.T) {
	n := parseExprString(t, "42")
	assert.Equal(t, ast.KindIntegerLiteral, n.Kind)
	assert.Equal(t, "42", n.Primary)
}

func TestFloatLiteral(t *testing.T) {
	n := parseExprString(t, "3.14")
	assert.Equal(t, ast.KindFloatLiteral, n.Kind)
	assert.Equal(t, "3.14", n.Primary)
}

func TestFloatLiteralWithExponent(t *testing.T) {
	n := parseExprString(t, "1e10")
	assert.Equal(t, ast.KindFloatLiteral, n.Kind)
}

func TestSignedConstantInLimit(t *testing.T) {
	p := newTestParser()
	root, err := p.Parse("SELECT a FROM t LIMIT -1")
	assert.NoError(t, err)
	limit := root.ChildAt(root.ChildCount - 1)
	tagged := limit.ChildAt(0)
	val := tagged.ChildAt(0)
	assert.Equal(t, ast.KindUnaryExpr, val.Kind)
	assert.Equal(t, "-", val.Primary)
}
