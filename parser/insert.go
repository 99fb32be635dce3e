package parser

import (
	"github.com/kynessa/sqlfront/ast"
	"github.com/kynessa/sqlfront/tokenizer"
)

// parseInsertStatement parses "INSERT INTO table [(cols)] (VALUES ... |
// SELECT ...) [ON CONFLICT ...] [RETURNING ...]" per spec.md §4.6.
func (p *Parser) parseInsertStatement() (*ast.Node, error) {
	p.cur.advance() // INSERT
	if !p.cur.consumeKeyword(tokenizer.INTO) {
		return nil, p.errorf(ErrUnexpectedToken, "expected INTO after INSERT")
	}

	n := p.newNode(ast.KindInsertStmt)

	table, err := p.parseTableRefOrSubquery()
	if err != nil {
		return nil, err
	}
	n.AddChild(table)

	if p.cur.isDelim(tokenizer.OPAREN) {
		cols, err := p.parseColumnNameList()
		if err != nil {
			return nil, err
		}
		n.AddChild(cols)
	} else {
		n.AddChild(p.newNode(ast.KindList)) // empty column list means "all columns"
	}

	switch {
	case p.cur.isKeyword(tokenizer.VALUES):
		source, err := p.parseValuesStatement()
		if err != nil {
			return nil, err
		}
		n.AddChild(source)
	case p.cur.isKeyword(tokenizer.SELECT), p.cur.isKeyword(tokenizer.WITH):
		source, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		n.AddChild(source)
	default:
		return nil, p.errorf(ErrMissingClause, "expected VALUES or SELECT in INSERT")
	}

	if p.cur.isKeyword(tokenizer.ON) {
		conflict, err := p.parseOnConflictClause()
		if err != nil {
			return nil, err
		}
		n.AddChild(conflict)
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

func (p *Parser) parseColumnNameList() (*ast.Node, error) {
	if !p.cur.consumeDelim(tokenizer.OPAREN) {
		return nil, p.errorf(ErrUnexpectedToken, "expected '('")
	}
	p.parenDepth++
	n := p.newNode(ast.KindList)
	for {
		if !p.cur.isIdentLike() {
			return nil, p.errorf(ErrUnexpectedToken, "expected column name")
		}
		col := p.newNode(ast.KindIdentifier)
		col.Primary = p.factory.CopyString(p.cur.current().Lexeme)
		p.cur.advance()
		n.AddChild(col)
		if !p.cur.consumeDelim(tokenizer.COMMA) {
			break
		}
	}
	if !p.cur.consumeDelim(tokenizer.CPAREN) {
		return nil, p.errorf(ErrUnbalancedParens, "expected ')' to close column list")
	}
	p.parenDepth--
	return n, nil
}

// parseOnConflictClause parses "ON CONFLICT [(cols) | ON CONSTRAINT name]
// DO (NOTHING | UPDATE SET assignments [WHERE cond])".
func (p *Parser) parseOnConflictClause() (*ast.Node, error) {
	p.cur.advance() // ON
	if !p.cur.consumeKeyword(tokenizer.CONFLICT) {
		return nil, p.errorf(ErrUnexpectedToken, "expected CONFLICT after ON")
	}
	n := p.newNode(ast.KindOnConflictClause)

	if p.cur.isDelim(tokenizer.OPAREN) {
		target, err := p.parseColumnNameList()
		if err != nil {
			return nil, err
		}
		n.AddChild(target)
	}

	if !p.cur.consumeKeyword(tokenizer.DO) {
		return nil, p.errorf(ErrUnexpectedToken, "expected DO in ON CONFLICT clause")
	}

	if p.cur.consumeKeyword(tokenizer.NOTHING) {
		n.Primary = "NOTHING"
		return n, nil
	}

	if !p.cur.consumeKeyword(tokenizer.UPDATE) {
		return nil, p.errorf(ErrUnexpectedToken, "expected NOTHING or UPDATE after DO")
	}
	n.Primary = "UPDATE"
	if !p.cur.consumeKeyword(tokenizer.SET) {
		return nil, p.errorf(ErrUnexpectedToken, "expected SET after DO UPDATE")
	}
	set, err := p.parseSetClause()
	if err != nil {
		return nil, err
	}
	n.AddChild(set)

	if p.cur.consumeKeyword(tokenizer.WHERE) {
		where := p.newNode(ast.KindWhereClause)
		cond, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		where.AddChild(cond)
		n.AddChild(where)
	}

	return n, nil
}

// parseReturningClause parses "RETURNING" followed by a select-list-like
// expression list (bare * included).
func (p *Parser) parseReturningClause() (*ast.Node, error) {
	n := p.newNode(ast.KindReturningClause)
	var err error
	p.withContext(ast.ContextReturning, func() {
		for {
			var item *ast.Node
			item, err = p.parseSelectItem()
			if err != nil {
				return
			}
			n.AddChild(item)
			if !p.cur.consumeDelim(tokenizer.COMMA) {
				return
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return n, nil
}

// parseSetClause parses "col = expr, col = expr, ..." for UPDATE and the
// DO UPDATE SET arm of ON CONFLICT.
func (p *Parser) parseSetClause() (*ast.Node, error) {
	n := p.newNode(ast.KindSetClause)
	var err error
	p.withContext(ast.ContextSetClause, func() {
		for {
			if !p.cur.isIdentLike() {
				err = p.errorf(ErrUnexpectedToken, "expected column name in SET")
				return
			}
			assign := p.newNode(ast.KindAssignment)
			col := p.newNode(ast.KindIdentifier)
			col.Primary = p.factory.CopyString(p.cur.current().Lexeme)
			p.cur.advance()
			assign.AddChild(col)

			if p.cur.current().Type != tokenizer.OP || p.cur.current().Lexeme != "=" {
				err = p.errorf(ErrUnexpectedToken, "expected '=' in SET assignment")
				return
			}
			p.cur.advance()

			var val *ast.Node
			val, err = p.parseExpression(0)
			if err != nil {
				return
			}
			assign.AddChild(val)
			n.AddChild(assign)
			if !p.cur.consumeDelim(tokenizer.COMMA) {
				return
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return n, nil
}
