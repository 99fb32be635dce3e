package parser

import (
	"github.com/kynessa/sqlfront/ast"
	"github.com/kynessa/sqlfront/tokenizer"
)

// parseUpdateStatement parses "UPDATE table SET assignments [FROM ...]
// [WHERE cond] [RETURNING ...]".
func (p *Parser) parseUpdateStatement() (*ast.Node, error) {
	p.cur.advance() // UPDATE
	n := p.newNode(ast.KindUpdateStmt)

	table, err := p.parseTableRefOrSubquery()
	if err != nil {
		return nil, err
	}
	n.AddChild(table)

	if !p.cur.consumeKeyword(tokenizer.SET) {
		return nil, p.errorf(ErrUnexpectedToken, "expected SET in UPDATE")
	}
	set, err := p.parseSetClause()
	if err != nil {
		return nil, err
	}
	n.AddChild(set)

	if p.cur.consumeKeyword(tokenizer.FROM) {
		from, err := p.parseFromClause()
		if err != nil {
			return nil, err
		}
		n.AddChild(from)
	}

	if p.cur.consumeKeyword(tokenizer.WHERE) {
		where := p.newNode(ast.KindWhereClause)
		var cond *ast.Node
		p.withContext(ast.ContextWhereClause, func() {
			cond, err = p.parseExpression(0)
		})
		if err != nil {
			return nil, err
		}
		where.AddChild(cond)
		n.AddChild(where)
	}

	if p.cur.consumeKeyword(tokenizer.RETURNING) {
		ret, err := p.parseReturningClause()
		if err != nil {
			return nil, err
		}
		n.AddChild(ret)
	}

	return n, nil
}
