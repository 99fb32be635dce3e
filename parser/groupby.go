package parser

import (
	"github.com/kynessa/sqlfront/ast"
	"github.com/kynessa/sqlfront/tokenizer"
)

// parseGroupByClause parses a comma-separated GROUP BY list where each
// item is a plain expression, CUBE(...), ROLLUP(...), GROUPING SETS
// (...), or an empty grouping set "()" — the CUBE/ROLLUP/GROUPING SETS
// invariant (only legal here) is enforced structurally by being reachable
// only from this production, not by a separate validator check.
func (p *Parser) parseGroupByClause() (*ast.Node, error) {
	clause := p.newNode(ast.KindGroupByClause)
	for {
		var item *ast.Node
		var err error
		p.withContext(ast.ContextGroupByClause, func() {
			item, err = p.parseGroupByItem()
		})
		if err != nil {
			return nil, err
		}
		clause.AddChild(item)
		if !p.cur.consumeDelim(tokenizer.COMMA) {
			break
		}
	}
	return clause, nil
}

func (p *Parser) parseGroupByItem() (*ast.Node, error) {
	switch {
	case p.cur.consumeKeyword(tokenizer.CUBE):
		return p.parseGroupingArgList(ast.KindCube)
	case p.cur.consumeKeyword(tokenizer.ROLLUP):
		return p.parseGroupingArgList(ast.KindRollup)
	case p.cur.isKeyword(tokenizer.GROUPING):
		p.cur.advance()
		if !p.cur.consumeKeyword(tokenizer.SETS) {
			return nil, p.errorf(ErrUnexpectedToken, "expected SETS after GROUPING")
		}
		if !p.cur.consumeDelim(tokenizer.OPAREN) {
			return nil, p.errorf(ErrUnexpectedToken, "expected '(' after GROUPING SETS")
		}
		p.parenDepth++
		n := p.newNode(ast.KindGroupingSet)
		for {
			set, err := p.parseGroupingSetEntry()
			if err != nil {
				return nil, err
			}
			n.AddChild(set)
			if !p.cur.consumeDelim(tokenizer.COMMA) {
				break
			}
		}
		if !p.cur.consumeDelim(tokenizer.CPAREN) {
			return nil, p.errorf(ErrUnbalancedParens, "expected ')' to close GROUPING SETS")
		}
		p.parenDepth--
		return n, nil
	case p.cur.isDelim(tokenizer.OPAREN) && p.cur.peek().Type == tokenizer.CPAREN:
		p.cur.advance()
		p.cur.advance()
		return p.newNode(ast.KindList), nil // empty grouping set
	}
	return p.parseExpression(0)
}

// parseGroupingArgList parses "(expr, expr, ...)" after CUBE/ROLLUP.
func (p *Parser) parseGroupingArgList(kind ast.Kind) (*ast.Node, error) {
	n := p.newNode(kind)
	if !p.cur.consumeDelim(tokenizer.OPAREN) {
		return nil, p.errorf(ErrUnexpectedToken, "expected '(' after CUBE/ROLLUP")
	}
	p.parenDepth++
	for {
		item, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		n.AddChild(item)
		if !p.cur.consumeDelim(tokenizer.COMMA) {
			break
		}
	}
	if !p.cur.consumeDelim(tokenizer.CPAREN) {
		return nil, p.errorf(ErrUnbalancedParens, "expected ')' to close CUBE/ROLLUP")
	}
	p.parenDepth--
	return n, nil
}

// parseGroupingSetEntry parses one entry of GROUPING SETS: an empty "()",
// a parenthesized expression list, or a bare expression.
func (p *Parser) parseGroupingSetEntry() (*ast.Node, error) {
	if p.cur.isDelim(tokenizer.OPAREN) {
		if p.cur.peek().Type == tokenizer.CPAREN {
			p.cur.advance()
			p.cur.advance()
			return p.newNode(ast.KindList), nil
		}
		p.cur.advance()
		p.parenDepth++
		n := p.newNode(ast.KindList)
		for {
			item, err := p.parseExpression(0)
			if err != nil {
				return nil, err
			}
			n.AddChild(item)
			if !p.cur.consumeDelim(tokenizer.COMMA) {
				break
			}
		}
		if !p.cur.consumeDelim(tokenizer.CPAREN) {
			return nil, p.errorf(ErrUnbalancedParens, "expected ')' to close grouping set")
		}
		p.parenDepth--
		return n, nil
	}
	return p.parseExpression(0)
}
