package parser

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kynessa/sqlfront/ast"
	"github.com/kynessa/sqlfront/tokenizer"
)

// parseNumericLiteral classifies a scanned NUMBER token as integer or
// float and validates it syntactically with shopspring/decimal rather
// than re-deriving numeric grammar by hand: a lexeme the tokenizer
// accepted but decimal.NewFromString rejects (which should not happen
// given the scanner's own digit grammar, but a third-party parser is a
// strictly stronger check than eyeballing the regex) is reported as a
// malformed literal rather than silently passed through.
func (p *Parser) parseNumericLiteral() (*ast.Node, error) {
	t := p.cur.current()
	p.cur.advance()

	if _, err := decimal.NewFromString(t.Lexeme); err != nil {
		return nil, p.errorf(ErrMalformedLiteral, "invalid numeric literal %q: %v", t.Lexeme, err)
	}

	kind := ast.KindIntegerLiteral
	if strings.ContainsAny(t.Lexeme, ".eE") {
		kind = ast.KindFloatLiteral
	}
	n := p.newNode(kind)
	n.Primary = p.factory.CopyString(t.Lexeme)
	return n, nil
}

// parseSignedConstant parses an optionally-signed integer or float
// literal, used by window-frame bounds and LIMIT/OFFSET where a bare
// negative constant is grammatically simpler than a full expression.
func (p *Parser) parseSignedConstant() (*ast.Node, error) {
	if p.cur.current().Type == tokenizer.OP && (p.cur.current().Lexeme == "-" || p.cur.current().Lexeme == "+") {
		sign := p.cur.current().Lexeme
		p.cur.advance()
		operand, err := p.parseNumericLiteral()
		if err != nil {
			return nil, err
		}
		n := p.newNode(ast.KindUnaryExpr)
		n.Primary = sign
		n.AddChild(operand)
		return n, nil
	}
	return p.parseNumericLiteral()
}
