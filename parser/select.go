package parser

import (
	"github.com/kynessa/sqlfront/ast"
	"github.com/kynessa/sqlfront/tokenizer"
)

// parseSelectStatement parses a full SELECT statement: a chain of
// set-operation arms (UNION/INTERSECT/EXCEPT) followed by a single
// ORDER BY / LIMIT / OFFSET that applies to the combined result, per
// spec.md §4.5. It is also the entry point used for a SELECT nested as a
// subquery expression or FROM-list derived table.
func (p *Parser) parseSelectStatement() (*ast.Node, error) {
	g := p.enterDepth()
	defer g.leave()
	if !g.ok() {
		return nil, nil
	}

	root, err := p.parseSetOpChain()
	if err != nil {
		return nil, err
	}

	if p.cur.consumeKeyword(tokenizer.ORDER) {
		if !p.cur.consumeKeyword(tokenizer.BY) {
			return nil, p.errorf(ErrUnexpectedToken, "expected BY after ORDER")
		}
		ob, err := p.parseOrderByItems()
		if err != nil {
			return nil, err
		}
		root.AddChild(ob)
	}

	if p.cur.isKeyword(tokenizer.LIMIT) || p.cur.isKeyword(tokenizer.OFFSET) {
		limit, err := p.parseLimitOffset()
		if err != nil {
			return nil, err
		}
		root.AddChild(limit)
	}

	return root, nil
}

// parseSetOpChain parses one or more SELECT cores joined by UNION,
// INTERSECT, or EXCEPT, left-associatively.
func (p *Parser) parseSetOpChain() (*ast.Node, error) {
	left, err := p.parseSelectArm()
	if err != nil {
		return nil, err
	}

	for {
		var op string
		switch {
		case p.cur.isKeyword(tokenizer.UNION):
			op = "UNION"
		case p.cur.isKeyword(tokenizer.INTERSECT):
			op = "INTERSECT"
		case p.cur.isKeyword(tokenizer.EXCEPT):
			op = "EXCEPT"
		default:
			return left, nil
		}
		p.cur.advance()

		all := p.cur.consumeKeyword(tokenizer.ALL)
		if !all {
			p.cur.consumeKeyword(tokenizer.DISTINCT) // explicit DISTINCT is the default; consume and discard
		}

		right, err := p.parseSelectArm()
		if err != nil {
			return nil, err
		}

		n := p.newNode(ast.KindUnionStmt)
		n.Primary = op
		if all {
			n.Flags |= ast.FlagAll
		}
		n.AddChild(left)
		n.AddChild(right)
		left = n
	}
}

// parseSelectArm parses one set-operation operand: either a parenthesized
// SELECT statement (which may itself carry ORDER BY/LIMIT and further set
// operations), a bare VALUES list, or a bare SELECT core.
func (p *Parser) parseSelectArm() (*ast.Node, error) {
	if p.cur.isKeyword(tokenizer.VALUES) {
		return p.parseValuesStatement()
	}
	if p.cur.isDelim(tokenizer.OPAREN) && (p.cur.peek().Type == tokenizer.KEYWORD &&
		(p.cur.peek().Keyword == tokenizer.SELECT || p.cur.peek().Keyword == tokenizer.WITH)) {
		p.cur.advance()
		p.parenDepth++
		inner, err := p.parseSelectStatement()
		if err != nil {
			return nil, err
		}
		if !p.cur.consumeDelim(tokenizer.CPAREN) {
			return nil, p.errorf(ErrUnbalancedParens, "expected ')' to close parenthesized SELECT")
		}
		p.parenDepth--
		return inner, nil
	}
	return p.parseSelectCore()
}

// parseSelectCore parses a single SELECT ... FROM ... WHERE ... GROUP BY
// ... HAVING ... WINDOW core, without any set-operation tail or trailing
// ORDER BY/LIMIT (those belong to the enclosing parseSelectStatement).
func (p *Parser) parseSelectCore() (*ast.Node, error) {
	if !p.cur.consumeKeyword(tokenizer.SELECT) {
		return nil, p.errorf(ErrUnexpectedToken, "expected SELECT")
	}

	n := p.newNode(ast.KindSelectStmt)

	switch {
	case p.cur.consumeKeyword(tokenizer.DISTINCT):
		n.Flags |= ast.FlagDistinct
	case p.cur.consumeKeyword(tokenizer.ALL):
		n.Flags |= ast.FlagAll
	}

	list, err := p.parseSelectList()
	if err != nil {
		return nil, err
	}
	n.AddChild(list)

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

	if p.cur.consumeKeyword(tokenizer.GROUP) {
		if !p.cur.consumeKeyword(tokenizer.BY) {
			return nil, p.errorf(ErrUnexpectedToken, "expected BY after GROUP")
		}
		gb, err := p.parseGroupByClause()
		if err != nil {
			return nil, err
		}
		n.AddChild(gb)
	}

	if p.cur.consumeKeyword(tokenizer.HAVING) {
		having := p.newNode(ast.KindHavingClause)
		var cond *ast.Node
		p.withContext(ast.ContextHavingClause, func() {
			cond, err = p.parseExpression(0)
		})
		if err != nil {
			return nil, err
		}
		having.AddChild(cond)
		n.AddChild(having)
	}

	if p.cur.isKeyword(tokenizer.WINDOW) {
		win, err := p.parseWindowClause()
		if err != nil {
			return nil, err
		}
		n.AddChild(win)
	}

	if n.ChildCount == 0 {
		return nil, p.errorf(ErrMissingClause, "SELECT list must not be empty")
	}

	return n, nil
}

// parseSelectList parses a comma-separated select list, accepting a bare
// "*" / "t.*" item or an expression with an optional alias.
func (p *Parser) parseSelectList() (*ast.Node, error) {
	list := p.newNode(ast.KindSelectList)
	for {
		var item *ast.Node
		var err error
		p.withContext(ast.ContextSelectList, func() {
			item, err = p.parseSelectItem()
		})
		if err != nil {
			return nil, err
		}
		list.AddChild(item)
		if !p.cur.consumeDelim(tokenizer.COMMA) {
			break
		}
	}
	if list.ChildCount == 0 {
		return nil, p.errorf(ErrMissingClause, "SELECT list must not be empty")
	}
	return list, nil
}

func (p *Parser) parseSelectItem() (*ast.Node, error) {
	expr, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	item := p.newNode(ast.KindSelectItem)
	item.AddChild(expr)
	if expr.Kind != ast.KindStar {
		p.parseOptionalAlias(item)
	}
	return item, nil
}

// parseLimitOffset parses "LIMIT n [OFFSET m]" or "OFFSET m [LIMIT n]",
// both orders being in common use across dialects.
func (p *Parser) parseLimitOffset() (*ast.Node, error) {
	n := p.newNode(ast.KindLimitClause)

	parseOne := func(kw tokenizer.Keyword, label string) error {
		p.cur.advance()
		val, err := p.parseSignedConstant()
		if err != nil {
			return err
		}
		tagged := p.newNode(ast.KindIdentifier)
		tagged.Primary = label
		tagged.AddChild(val)
		n.AddChild(tagged)
		return nil
	}

	if p.cur.isKeyword(tokenizer.LIMIT) {
		if err := parseOne(tokenizer.LIMIT, "LIMIT"); err != nil {
			return nil, err
		}
	}
	if p.cur.isKeyword(tokenizer.OFFSET) {
		if err := parseOne(tokenizer.OFFSET, "OFFSET"); err != nil {
			return nil, err
		}
	}
	if p.cur.isKeyword(tokenizer.LIMIT) && n.ChildCount < 2 {
		if err := parseOne(tokenizer.LIMIT, "LIMIT"); err != nil {
			return nil, err
		}
	}
	return n, nil
}
