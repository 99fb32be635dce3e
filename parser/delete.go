package parser

import (
	"github.com/kynessa/sqlfront/ast"
	"github.com/kynessa/sqlfront/tokenizer"
)

// parseDeleteStatement parses "DELETE FROM table [USING ...] [WHERE cond]
// [RETURNING ...]".
func (p *Parser) parseDeleteStatement() (*ast.Node, error) {
	p.cur.advance() // DELETE
	if !p.cur.consumeKeyword(tokenizer.FROM) {
		return nil, p.errorf(ErrUnexpectedToken, "expected FROM after DELETE")
	}

	n := p.newNode(ast.KindDeleteStmt)

	table, err := p.parseTableRefOrSubquery()
	if err != nil {
		return nil, err
	}
	n.AddChild(table)

	if p.cur.consumeKeyword(tokenizer.USING) {
		using, err := p.parseFromClause()
		if err != nil {
			return nil, err
		}
		using.Kind = ast.KindUsingClause
		n.AddChild(using)
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
