package parser

import (
	"strings"

	"github.com/kynessa/sqlfront/tokenizer"
)

// cursor is a thin, stateful view over a tokenizer.Stream: the parser
// only ever looks at "current" and "peek", advances one token at a time,
// and compares against keywords by numeric ID — except for the small set
// of keywords the tokenizer's canonical table omits (spec.md §4.2, §9),
// which fall back to case-folded lexeme comparison.
type cursor struct {
	stream *tokenizer.Stream
	pos    int
}

func newCursor(stream *tokenizer.Stream) *cursor {
	return &cursor{stream: stream}
}

func (c *cursor) current() tokenizer.Token { return c.stream.At(c.pos) }

func (c *cursor) peek() tokenizer.Token { return c.stream.At(c.pos + 1) }

// peekAt looks ahead n tokens beyond current (peekAt(0) == current()),
// used by isKeywordAt for multi-token lookahead (NOT IN/LIKE/BETWEEN,
// NOT EXISTS, CURRENT ROW).
func (c *cursor) peekAt(n int) tokenizer.Token { return c.stream.At(c.pos + n) }

func (c *cursor) advance() tokenizer.Token {
	t := c.current()
	if t.Type != tokenizer.EOF {
		c.pos++
	}
	return t
}

func (c *cursor) atEnd() bool { return c.current().Type == tokenizer.EOF }

func (c *cursor) position() tokenizer.Position { return c.current().Position }

// skipTrivia advances past whitespace and comment tokens. The scanner in
// this module does not emit whitespace tokens by construction (see
// tokenizer.Scan), but comments are real tokens and every call site that
// inspects "the next meaningful token" must skip them explicitly.
func (c *cursor) skipTrivia() {
	for {
		switch c.current().Type {
		case tokenizer.WHITESPACE, tokenizer.LINE_COMMENT, tokenizer.BLOCK_COMMENT:
			c.advance()
		default:
			return
		}
	}
}

// isKeyword reports whether the current token is the given keyword.
func (c *cursor) isKeyword(kw tokenizer.Keyword) bool {
	t := c.current()
	return t.Type == tokenizer.KEYWORD && t.Keyword == kw
}

// isKeywordAt is isKeyword at a lookahead offset.
func (c *cursor) isKeywordAt(n int, kw tokenizer.Keyword) bool {
	t := c.peekAt(n)
	return t.Type == tokenizer.KEYWORD && t.Keyword == kw
}

// isFallbackKeyword matches one of the keywords the canonical table omits
// by case-folded lexeme comparison, per spec.md §4.2.
func (c *cursor) isFallbackKeyword(kw tokenizer.Keyword) bool {
	t := c.current()
	if t.Type != tokenizer.IDENT {
		return false
	}
	got, ok := tokenizer.LookupFallbackKeyword(t.Lexeme)
	return ok && got == kw
}

// matchesAny reports whether the current token is a keyword equal to any
// of the given IDs, or a fallback-keyword match for any of them.
func (c *cursor) matchesAny(kws ...tokenizer.Keyword) bool {
	for _, kw := range kws {
		if c.isKeyword(kw) || c.isFallbackKeyword(kw) {
			return true
		}
	}
	return false
}

func (c *cursor) consumeKeyword(kw tokenizer.Keyword) bool {
	if c.isKeyword(kw) || c.isFallbackKeyword(kw) {
		c.advance()
		return true
	}
	return false
}

func (c *cursor) isDelim(t tokenizer.TokenType) bool { return c.current().Type == t }

func (c *cursor) consumeDelim(t tokenizer.TokenType) bool {
	if c.isDelim(t) {
		c.advance()
		return true
	}
	return false
}

// isIdentLike reports whether the current token could stand in for an
// identifier: a plain IDENT or a quoted QIDENT. Keyword tokens are not
// accepted here, so a name that collides with a keyword must be quoted.
func (c *cursor) isIdentLike() bool {
	t := c.current()
	return t.Type == tokenizer.IDENT || t.Type == tokenizer.QIDENT
}

func unquoteIdent(lexeme string) string {
	if len(lexeme) >= 2 && lexeme[0] == '"' && lexeme[len(lexeme)-1] == '"' {
		inner := lexeme[1 : len(lexeme)-1]
		return strings.ReplaceAll(inner, `""`, `"`)
	}
	return lexeme
}

func unquoteString(lexeme string) string {
	if len(lexeme) >= 2 && lexeme[0] == '\'' && lexeme[len(lexeme)-1] == '\'' {
		inner := lexeme[1 : len(lexeme)-1]
		return strings.ReplaceAll(inner, "''", "'")
	}
	return lexeme
}
