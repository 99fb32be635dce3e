package parser

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/kynessa/sqlfront/ast"
)

func TestParseScriptMultipleStatements(t *testing.T) {
	p := newTestParser()
	roots, err := p.ParseScript("SELECT 1; SELECT 2; SELECT 3")
	assert.NoError(t, err)
	assert.Equal(t, 3, len(roots))
	for _, r := range roots {
		assert.Equal(t, ast.KindSelectStmt, r.Kind)
	}
}

func TestParseScriptTrailingSemicolon(t *testing.T) {
	p := newTestParser()
	roots, err := p.ParseScript("SELECT 1;")
	assert.NoError(t, err)
	assert.Equal(t, 1, len(roots))
}

func TestParseScriptStopsOnError(t *testing.T) {
	p := newTestParser()
	roots, err := p.ParseScript("SELECT 1; SELECT FROM; SELECT 3")
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrScriptInterrupted)
	assert.Equal(t, 1, len(roots))
}

func TestParseScriptEmptyInput(t *testing.T) {
	p := newTestParser()
	_, err := p.ParseScript("   ")
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestParseScriptSemicolonInsideStringNotSplit(t *testing.T) {
	p := newTestParser()
	roots, err := p.ParseScript("SELECT 'a;b'; SELECT 2")
	assert.NoError(t, err)
	assert.Equal(t, 2, len(roots))
}
