package parser

import (
	"github.com/kynessa/sqlfront/ast"
	"github.com/kynessa/sqlfront/tokenizer"
)

// parseFromClause parses "FROM t1 [JOIN t2 ON ...] [, t3] ...", assuming
// the caller has already consumed FROM. Comma-separated table refs are
// themselves an implicit CROSS JOIN; each is folded left-associatively
// into a chain of KindJoinClause nodes wrapping the table refs they join,
// matching how the teacher's own FROM parsing builds left-deep trees.
func (p *Parser) parseFromClause() (*ast.Node, error) {
	clause := p.newNode(ast.KindFromClause)

	var left *ast.Node
	var err error
	p.withContext(ast.ContextFromClause, func() {
		left, err = p.parseTableRefOrSubquery()
	})
	if err != nil {
		return nil, err
	}

	for {
		if p.cur.consumeDelim(tokenizer.COMMA) {
			var right *ast.Node
			p.withContext(ast.ContextFromClause, func() {
				right, err = p.parseTableRefOrSubquery()
			})
			if err != nil {
				return nil, err
			}
			join := p.newNode(ast.KindJoinClause)
			join.Primary = "CROSS"
			join.AddChild(left)
			join.AddChild(right)
			left = join
			continue
		}

		if joinKind, ok := p.peekJoinKind(); ok {
			join, err := p.parseJoinTail(left, joinKind)
			if err != nil {
				return nil, err
			}
			left = join
			continue
		}

		break
	}

	clause.AddChild(left)
	return clause, nil
}

// peekJoinKind reports whether the current token starts a join
// production and, if so, which kind.
func (p *Parser) peekJoinKind() (string, bool) {
	switch {
	case p.cur.isKeyword(tokenizer.JOIN):
		return "INNER", true
	case p.cur.isKeyword(tokenizer.INNER):
		return "INNER", true
	case p.cur.isKeyword(tokenizer.LEFT):
		return "LEFT", true
	case p.cur.isKeyword(tokenizer.RIGHT):
		return "RIGHT", true
	case p.cur.isKeyword(tokenizer.FULL):
		return "FULL", true
	case p.cur.isKeyword(tokenizer.CROSS):
		return "CROSS", true
	case p.cur.isKeyword(tokenizer.NATURAL):
		return "NATURAL", true
	}
	return "", false
}

func (p *Parser) parseJoinTail(left *ast.Node, kind string) (*ast.Node, error) {
	natural := false
	if p.cur.consumeKeyword(tokenizer.NATURAL) {
		natural = true
	}

	switch {
	case p.cur.consumeKeyword(tokenizer.INNER):
		kind = "INNER"
	case p.cur.consumeKeyword(tokenizer.LEFT):
		kind = "LEFT"
		p.cur.consumeKeyword(tokenizer.OUTER)
	case p.cur.consumeKeyword(tokenizer.RIGHT):
		kind = "RIGHT"
		p.cur.consumeKeyword(tokenizer.OUTER)
	case p.cur.consumeKeyword(tokenizer.FULL):
		kind = "FULL"
		p.cur.consumeKeyword(tokenizer.OUTER)
	case p.cur.consumeKeyword(tokenizer.CROSS):
		kind = "CROSS"
	}

	if !p.cur.consumeKeyword(tokenizer.JOIN) {
		return nil, p.errorf(ErrUnexpectedToken, "expected JOIN")
	}

	var right *ast.Node
	var err error
	p.withContext(ast.ContextFromClause, func() {
		right, err = p.parseTableRefOrSubquery()
	})
	if err != nil {
		return nil, err
	}

	join := p.newNode(ast.KindJoinClause)
	join.Primary = kind
	if natural {
		join.Secondary = "NATURAL"
	}
	join.AddChild(left)
	join.AddChild(right)

	if kind == "CROSS" || natural {
		return join, nil
	}

	if p.cur.consumeKeyword(tokenizer.ON) {
		var cond *ast.Node
		p.withContext(ast.ContextJoinCondition, func() {
			cond, err = p.parseExpression(0)
		})
		if err != nil {
			return nil, err
		}
		join.AddChild(cond)
	} else if p.cur.consumeKeyword(tokenizer.USING) {
		if !p.cur.consumeDelim(tokenizer.OPAREN) {
			return nil, p.errorf(ErrUnexpectedToken, "expected '(' after USING")
		}
		p.parenDepth++
		using := p.newNode(ast.KindUsingClause)
		for {
			if !p.cur.isIdentLike() {
				return nil, p.errorf(ErrUnexpectedToken, "expected column name in USING")
			}
			col := p.newNode(ast.KindIdentifier)
			col.Primary = p.factory.CopyString(p.cur.current().Lexeme)
			p.cur.advance()
			using.AddChild(col)
			if !p.cur.consumeDelim(tokenizer.COMMA) {
				break
			}
		}
		if !p.cur.consumeDelim(tokenizer.CPAREN) {
			return nil, p.errorf(ErrUnbalancedParens, "expected ')' to close USING")
		}
		p.parenDepth--
		join.AddChild(using)
	} else {
		return nil, p.errorf(ErrMissingClause, "%s JOIN requires ON or USING", kind)
	}

	return join, nil
}

// parseTableRefOrSubquery parses one FROM-list item: a plain (optionally
// aliased) table name, or a parenthesized derived table/subquery, each
// optionally LATERAL.
func (p *Parser) parseTableRefOrSubquery() (*ast.Node, error) {
	lateral := p.cur.consumeKeyword(tokenizer.LATERAL)

	if p.cur.isDelim(tokenizer.OPAREN) {
		p.cur.advance()
		p.parenDepth++
		stmt, err := p.parseSelectStatement()
		if err != nil {
			return nil, err
		}
		if !p.cur.consumeDelim(tokenizer.CPAREN) {
			return nil, p.errorf(ErrUnbalancedParens, "expected ')' to close derived table")
		}
		p.parenDepth--
		n := p.newNode(ast.KindSubqueryRef)
		if lateral {
			n.Secondary = "LATERAL"
		}
		n.AddChild(stmt)
		p.parseOptionalAlias(n)
		return n, nil
	}

	if !p.cur.isIdentLike() {
		return nil, p.errorf(ErrUnexpectedToken, "expected table reference")
	}

	var parts []string
	for {
		parts = append(parts, p.cur.current().Lexeme)
		p.cur.advance()
		if p.cur.consumeDelim(tokenizer.DOT) {
			continue
		}
		break
	}

	n := p.newNode(ast.KindTableRef)
	n.Primary = p.factory.CopyString(parts[len(parts)-1])
	if len(parts) > 1 {
		n.Secondary = p.factory.CopyString(joinDot(parts[:len(parts)-1]))
	}
	_ = lateral // LATERAL on a bare table name is a syntactic no-op; only derived tables above carry it
	p.parseOptionalAlias(n)
	return n, nil
}

func (p *Parser) parseOptionalAlias(n *ast.Node) {
	hasAs := p.cur.consumeKeyword(tokenizer.AS)
	if p.cur.isIdentLike() {
		n.Flags |= ast.FlagHasAlias
		alias := p.newNode(ast.KindIdentifier)
		alias.Primary = p.factory.CopyString(p.cur.current().Lexeme)
		p.cur.advance()
		n.AddChild(alias)
	} else if hasAs {
		// AS consumed but no name followed; leave Flags unset so a
		// downstream check can flag the malformed alias.
	}
}

func joinDot(parts []string) string {
	out := parts[0]
	for _, s := range parts[1:] {
		out += "." + s
	}
	return out
}
