package parser

import (
	"github.com/kynessa/sqlfront/ast"
	"github.com/kynessa/sqlfront/tokenizer"
)

// parseWindowClause parses a top-level "WINDOW name AS (spec), ..." clause.
// Forward references between named windows (a later WINDOW entry naming
// an earlier one as its base) are accepted syntactically but not resolved
// here; SPEC_FULL.md's Open Questions leaves that to a downstream semantic
// pass rather than the parser.
func (p *Parser) parseWindowClause() (*ast.Node, error) {
	p.cur.advance() // WINDOW
	clause := p.newNode(ast.KindWindowClause)
	for {
		if !p.cur.isIdentLike() {
			return nil, p.errorf(ErrUnexpectedToken, "expected window name")
		}
		named := p.newNode(ast.KindNamedWindow)
		named.Primary = p.factory.CopyString(p.cur.current().Lexeme)
		p.cur.advance()
		if !p.cur.consumeKeyword(tokenizer.AS) {
			return nil, p.errorf(ErrUnexpectedToken, "expected AS after window name")
		}
		if !p.cur.consumeDelim(tokenizer.OPAREN) {
			return nil, p.errorf(ErrUnexpectedToken, "expected '(' to open window definition")
		}
		p.parenDepth++
		spec, err := p.parseWindowSpecBody()
		if err != nil {
			return nil, err
		}
		if !p.cur.consumeDelim(tokenizer.CPAREN) {
			return nil, p.errorf(ErrUnbalancedParens, "expected ')' to close window definition")
		}
		p.parenDepth--
		named.AddChild(spec)
		clause.AddChild(named)
		if !p.cur.consumeDelim(tokenizer.COMMA) {
			break
		}
	}
	return clause, nil
}

// parseWindowSpecBody parses the contents of an OVER(...) or WINDOW ... AS
// (...) body: an optional base window name, PARTITION BY, ORDER BY, and a
// frame clause, in that order. The caller owns the surrounding parens.
func (p *Parser) parseWindowSpecBody() (*ast.Node, error) {
	spec := p.newNode(ast.KindWindowSpec)

	var err error
	p.withContext(ast.ContextWindowSpec, func() {
		if p.cur.isIdentLike() &&
			!p.cur.isKeyword(tokenizer.PARTITION) && !p.cur.isKeyword(tokenizer.ORDER) &&
			!p.cur.isKeyword(tokenizer.ROWS) && !p.cur.isKeyword(tokenizer.RANGE) && !p.cur.isKeyword(tokenizer.GROUPS) {
			base := p.newNode(ast.KindIdentifier)
			base.Primary = p.factory.CopyString(p.cur.current().Lexeme)
			p.cur.advance()
			spec.AddChild(base)
		}

		if p.cur.consumeKeyword(tokenizer.PARTITION) {
			if !p.cur.consumeKeyword(tokenizer.BY) {
				err = p.errorf(ErrUnexpectedToken, "expected BY after PARTITION")
				return
			}
			list := p.newNode(ast.KindList)
			for {
				var item *ast.Node
				item, err = p.parseExpression(0)
				if err != nil {
					return
				}
				list.AddChild(item)
				if !p.cur.consumeDelim(tokenizer.COMMA) {
					break
				}
			}
			spec.AddChild(list)
		}

		if p.cur.consumeKeyword(tokenizer.ORDER) {
			if !p.cur.consumeKeyword(tokenizer.BY) {
				err = p.errorf(ErrUnexpectedToken, "expected BY after ORDER")
				return
			}
			var ob *ast.Node
			ob, err = p.parseOrderByItems()
			if err != nil {
				return
			}
			spec.AddChild(ob)
		}

		if p.cur.matchesAny(tokenizer.ROWS, tokenizer.RANGE, tokenizer.GROUPS) {
			var frame *ast.Node
			frame, err = p.parseFrameClause()
			if err != nil {
				return
			}
			spec.AddChild(frame)
		}
	})
	if err != nil {
		return nil, err
	}
	return spec, nil
}

func (p *Parser) parseFrameClause() (*ast.Node, error) {
	frame := p.newNode(ast.KindFrameClause)
	switch {
	case p.cur.consumeKeyword(tokenizer.ROWS):
		frame.Primary = "ROWS"
	case p.cur.consumeKeyword(tokenizer.RANGE):
		frame.Primary = "RANGE"
	case p.cur.consumeKeyword(tokenizer.GROUPS):
		frame.Primary = "GROUPS"
	}

	if p.cur.consumeKeyword(tokenizer.BETWEEN) {
		start, err := p.parseFrameBound()
		if err != nil {
			return nil, err
		}
		if !p.cur.consumeKeyword(tokenizer.AND) {
			return nil, p.errorf(ErrUnexpectedToken, "expected AND in frame clause")
		}
		end, err := p.parseFrameBound()
		if err != nil {
			return nil, err
		}
		frame.AddChild(start)
		frame.AddChild(end)
		return frame, nil
	}

	start, err := p.parseFrameBound()
	if err != nil {
		return nil, err
	}
	frame.AddChild(start)
	return frame, nil
}

func (p *Parser) parseFrameBound() (*ast.Node, error) {
	n := p.newNode(ast.KindFrameBound)

	if p.cur.consumeKeyword(tokenizer.UNBOUNDED) {
		switch {
		case p.cur.consumeKeyword(tokenizer.PRECEDING):
			n.Secondary = string(ast.BoundUnboundedPreceding)
		case p.cur.consumeKeyword(tokenizer.FOLLOWING):
			n.Secondary = string(ast.BoundUnboundedFollowing)
		default:
			return nil, p.errorf(ErrUnexpectedToken, "expected PRECEDING or FOLLOWING after UNBOUNDED")
		}
		return n, nil
	}

	if p.cur.isKeyword(tokenizer.CURRENT) && p.cur.isKeywordAt(1, tokenizer.ROW) {
		p.cur.advance()
		p.cur.advance()
		n.Secondary = string(ast.BoundCurrentRow)
		return n, nil
	}

	offset, err := p.parseExpression(precAdd)
	if err != nil {
		return nil, err
	}
	n.AddChild(offset)

	switch {
	case p.cur.consumeKeyword(tokenizer.PRECEDING):
		n.Secondary = string(ast.BoundPreceding)
	case p.cur.consumeKeyword(tokenizer.FOLLOWING):
		n.Secondary = string(ast.BoundFollowing)
	default:
		return nil, p.errorf(ErrUnexpectedToken, "expected PRECEDING or FOLLOWING")
	}
	return n, nil
}
