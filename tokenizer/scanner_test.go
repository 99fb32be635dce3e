package tokenizer

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestScanBasicSelect(t *testing.T) {
	tokens, err := Scan("SELECT a, b FROM t WHERE a > 1")
	assert.NoError(t, err)

	var types []TokenType
	for _, tok := range tokens {
		if tok.Type == WHITESPACE {
			continue
		}
		types = append(types, tok.Type)
	}
	assert.Equal(t, []TokenType{
		KEYWORD, IDENT, COMMA, IDENT, KEYWORD, IDENT, KEYWORD, IDENT, OP, NUMBER, EOF,
	}, types)
}

func TestScanKeywordCaseInsensitive(t *testing.T) {
	tokens, err := Scan("select * from T")
	assert.NoError(t, err)
	assert.Equal(t, KEYWORD, tokens[0].Type)
	assert.Equal(t, SELECT, tokens[0].Keyword)
}

func TestScanStringWithEscapedQuote(t *testing.T) {
	tokens, err := Scan("'it''s'")
	assert.NoError(t, err)
	assert.Equal(t, STRING, tokens[0].Type)
	assert.Equal(t, "'it''s'", tokens[0].Lexeme)
}

func TestScanUnterminatedStringFails(t *testing.T) {
	_, err := Scan("'abc")
	assert.Error(t, err)
}

func TestScanMultiCharOperators(t *testing.T) {
	tokens, err := Scan("a->>'x' b::int c<>d")
	assert.NoError(t, err)
	var ops []string
	for _, tok := range tokens {
		if tok.Type == OP {
			ops = append(ops, tok.Lexeme)
		}
	}
	assert.Equal(t, []string{"->>", "::", "<>"}, ops)
}

func TestScanFallbackKeywordsNotInCanonicalTable(t *testing.T) {
	_, ok := LookupKeyword("TRUNCATE")
	assert.False(t, ok)
	kw, ok := LookupFallbackKeyword("truncate")
	assert.True(t, ok)
	assert.Equal(t, TRUNCATE, kw)
}

func TestScanLineAndColumnTracking(t *testing.T) {
	tokens, err := Scan("SELECT 1\nFROM t")
	assert.NoError(t, err)
	var fromTok Token
	for _, tok := range tokens {
		if tok.Type == KEYWORD && tok.Keyword == FROM {
			fromTok = tok
		}
	}
	assert.Equal(t, 2, fromTok.Position.Line)
	assert.Equal(t, 1, fromTok.Position.Column)
}
