package parser

import (
	"github.com/kynessa/sqlfront/ast"
	"github.com/kynessa/sqlfront/tokenizer"
)

// parseSetStatement parses the session-configuration form of SET — "SET
// [SESSION|LOCAL] name {TO|=} value" — producing a KindUtilityStmt, as
// distinct from the SET clause of an UPDATE statement (parseSetClause).
func (p *Parser) parseSetStatement() (*ast.Node, error) {
	p.cur.advance() // SET
	n := p.newNode(ast.KindUtilityStmt)
	n.Primary = "SET"

	if p.cur.isIdentLike() && (p.cur.current().Lexeme == "SESSION" || p.cur.current().Lexeme == "LOCAL") {
		n.Secondary = p.cur.current().Lexeme
		p.cur.advance()
	}

	if !p.cur.isIdentLike() {
		return nil, p.errorf(ErrUnexpectedToken, "expected setting name after SET")
	}
	name := p.newNode(ast.KindIdentifier)
	name.Primary = p.factory.CopyString(p.cur.current().Lexeme)
	p.cur.advance()
	n.AddChild(name)

	if !p.cur.consumeKeyword(tokenizer.TO) {
		if p.cur.current().Type != tokenizer.OP || p.cur.current().Lexeme != "=" {
			return nil, p.errorf(ErrUnexpectedToken, "expected TO or '=' in SET statement")
		}
		p.cur.advance()
	}

	val, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	n.AddChild(val)
	return n, nil
}
