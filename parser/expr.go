package parser

import (
	"github.com/kynessa/sqlfront/ast"
	"github.com/kynessa/sqlfront/tokenizer"
)

// Precedence levels, low to high, per spec.md §4.7. Climbing the ladder
// from precOr to precConcat is the Pratt parser's main loop; unary sign,
// ::, ., and [...] are handled as tight prefix/postfix operations around
// a primary rather than as levels in the binary ladder, which is the
// conventional resolution of a textual precedence list that places them
// after infix operators (see DESIGN.md).
const (
	precNone = iota
	precOr
	precAnd
	precComparison
	precBetween
	precIn
	precLike
	precIsNull
	precJSON
	precAdd
	precMul
	precExp
	precConcat
)

// parseExpression is the Pratt entry point: parse a primary, then climb
// the precedence ladder consuming infix operators bound at least as
// tightly as minPrec.
func (p *Parser) parseExpression(minPrec int) (*ast.Node, error) {
	g := p.enterDepth()
	defer g.leave()
	if !g.ok() {
		return nil, nil
	}

	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		prec, consume := p.infixPrecedence()
		if prec < minPrec || prec == precNone {
			break
		}

		next, err := consume(left)
		if err != nil {
			return nil, err
		}
		left = next
	}

	return left, nil
}

// infixConsumer parses one infix production given its already-parsed left
// operand, returning the combined node.
type infixConsumer func(left *ast.Node) (*ast.Node, error)

// infixPrecedence inspects the current token and returns the precedence
// of the infix operator it starts, plus a closure that consumes it. It
// returns (precNone, nil) when the current token does not start an infix
// production at all (statement/clause terminators, commas, closing
// delimiters, EOF).
func (p *Parser) infixPrecedence() (int, infixConsumer) {
	t := p.cur.current()

	if t.Type == tokenizer.KEYWORD {
		switch t.Keyword {
		case tokenizer.OR:
			return precOr, p.consumeBinaryKeyword(precOr, "OR")
		case tokenizer.AND:
			return precAnd, p.consumeBinaryKeyword(precAnd, "AND")
		case tokenizer.BETWEEN:
			return precBetween, p.consumeBetween(false)
		case tokenizer.NOT:
			if sub, ok := p.peekNotInfix(); ok {
				return sub.prec, sub.consume
			}
			return precNone, nil
		case tokenizer.IN:
			return precIn, p.consumeIn(false)
		case tokenizer.LIKE:
			return precLike, p.consumeLike(false, "LIKE")
		case tokenizer.ILIKE:
			return precLike, p.consumeLike(false, "ILIKE")
		case tokenizer.IS:
			return precIsNull, p.consumeIs()
		}
		return precNone, nil
	}

	if t.Type == tokenizer.OP {
		switch t.Lexeme {
		case "=", "<>", "!=", "<", ">", "<=", ">=":
			return precComparison, p.consumeBinaryOp(precComparison, t.Lexeme)
		case "->", "->>", "#>", "#>>", "@>", "<@", "?", "?|", "?&":
			return precJSON, p.consumeBinaryOp(precJSON, t.Lexeme)
		case "+", "-":
			return precAdd, p.consumeBinaryOp(precAdd, t.Lexeme)
		case "*", "/", "%":
			return precMul, p.consumeBinaryOp(precMul, t.Lexeme)
		case "^":
			return precExp, p.consumeBinaryOpRightAssoc(precExp, t.Lexeme)
		case "||":
			return precConcat, p.consumeBinaryOp(precConcat, t.Lexeme)
		}
	}

	return precNone, nil
}

// notInfixBranch describes an infix production reachable through a
// leading NOT, consumed as a unit per the NOT-prefix disambiguation state
// machine in spec.md §9: in infix position NOT is consumed only when
// immediately followed by IN, EXISTS, LIKE, ILIKE, or BETWEEN.
type notInfixBranch struct {
	prec    int
	consume infixConsumer
}

func (p *Parser) peekNotInfix() (notInfixBranch, bool) {
	switch {
	case p.cur.isKeywordAt(1, tokenizer.IN):
		return notInfixBranch{precIn, p.consumeIn(true)}, true
	case p.cur.isKeywordAt(1, tokenizer.BETWEEN):
		return notInfixBranch{precBetween, p.consumeBetween(true)}, true
	case p.cur.isKeywordAt(1, tokenizer.LIKE):
		return notInfixBranch{precLike, p.consumeLike(true, "LIKE")}, true
	case p.cur.isKeywordAt(1, tokenizer.ILIKE):
		return notInfixBranch{precLike, p.consumeLike(true, "ILIKE")}, true
	}
	return notInfixBranch{}, false
}

func (p *Parser) consumeBinaryKeyword(prec int, op string) infixConsumer {
	return func(left *ast.Node) (*ast.Node, error) {
		p.cur.advance()
		right, err := p.parseExpression(prec + 1)
		if err != nil {
			return nil, err
		}
		n := p.newNode(ast.KindBinaryExpr)
		n.Primary = op
		n.AddChild(left)
		n.AddChild(right)
		return n, nil
	}
}

func (p *Parser) consumeBinaryOp(prec int, op string) infixConsumer {
	return func(left *ast.Node) (*ast.Node, error) {
		p.cur.advance()
		right, err := p.parseExpression(prec + 1)
		if err != nil {
			return nil, err
		}
		n := p.newNode(ast.KindBinaryExpr)
		n.Primary = op
		n.AddChild(left)
		n.AddChild(right)
		return n, nil
	}
}

// consumeBinaryOpRightAssoc is consumeBinaryOp but recurses at the same
// precedence level, giving right-associative operators (exponentiation)
// their usual grouping.
func (p *Parser) consumeBinaryOpRightAssoc(prec int, op string) infixConsumer {
	return func(left *ast.Node) (*ast.Node, error) {
		p.cur.advance()
		right, err := p.parseExpression(prec)
		if err != nil {
			return nil, err
		}
		n := p.newNode(ast.KindBinaryExpr)
		n.Primary = op
		n.AddChild(left)
		n.AddChild(right)
		return n, nil
	}
}

func (p *Parser) consumeBetween(not bool) infixConsumer {
	return func(left *ast.Node) (*ast.Node, error) {
		if not {
			p.cur.advance() // NOT
		}
		p.cur.advance() // BETWEEN
		n := p.newNode(ast.KindBetweenExpr)
		if not {
			n.SemanticFlags |= ast.FlagNot
		}
		n.AddChild(left)
		lo, err := p.parseExpression(precBetween + 1)
		if err != nil {
			return nil, err
		}
		if !p.cur.consumeKeyword(tokenizer.AND) {
			return nil, p.errorf(ErrUnexpectedToken, "expected AND in BETWEEN expression")
		}
		hi, err := p.parseExpression(precBetween + 1)
		if err != nil {
			return nil, err
		}
		n.AddChild(lo)
		n.AddChild(hi)
		return n, nil
	}
}

func (p *Parser) consumeIn(not bool) infixConsumer {
	return func(left *ast.Node) (*ast.Node, error) {
		if not {
			p.cur.advance() // NOT
		}
		p.cur.advance() // IN
		n := p.newNode(ast.KindInExpr)
		if not {
			n.SemanticFlags |= ast.FlagNot
		}
		n.AddChild(left)

		if !p.cur.consumeDelim(tokenizer.OPAREN) {
			return nil, p.errorf(ErrUnexpectedToken, "expected '(' after IN")
		}
		p.parenDepth++
		if p.cur.isKeyword(tokenizer.SELECT) || p.cur.isKeyword(tokenizer.WITH) {
			sub, err := p.parseSubqueryExpr()
			if err != nil {
				return nil, err
			}
			n.AddChild(sub)
		} else {
			list := p.newNode(ast.KindList)
			for {
				item, err := p.parseExpression(0)
				if err != nil {
					return nil, err
				}
				list.AddChild(item)
				if !p.cur.consumeDelim(tokenizer.COMMA) {
					break
				}
			}
			n.AddChild(list)
		}
		if !p.cur.consumeDelim(tokenizer.CPAREN) {
			return nil, p.errorf(ErrUnbalancedParens, "expected ')' after IN list")
		}
		p.parenDepth--
		return n, nil
	}
}

func (p *Parser) consumeLike(not bool, op string) infixConsumer {
	return func(left *ast.Node) (*ast.Node, error) {
		if not {
			p.cur.advance() // NOT
		}
		p.cur.advance() // LIKE / ILIKE
		n := p.newNode(ast.KindLikeExpr)
		n.Primary = op
		if not {
			n.SemanticFlags |= ast.FlagNot
		}
		n.AddChild(left)
		pattern, err := p.parseExpression(precLike + 1)
		if err != nil {
			return nil, err
		}
		n.AddChild(pattern)
		return n, nil
	}
}

// consumeIs handles IS NULL / IS NOT NULL / IS [NOT] DISTINCT FROM.
func (p *Parser) consumeIs() infixConsumer {
	return func(left *ast.Node) (*ast.Node, error) {
		p.cur.advance() // IS
		not := p.cur.consumeKeyword(tokenizer.NOT)

		if p.cur.isKeyword(tokenizer.DISTINCT) {
			p.cur.advance()
			if !p.cur.consumeKeyword(tokenizer.FROM) {
				return nil, p.errorf(ErrUnexpectedToken, "expected FROM after DISTINCT")
			}
			n := p.newNode(ast.KindIsDistinctExpr)
			if not {
				n.SemanticFlags |= ast.FlagNot
			}
			n.AddChild(left)
			right, err := p.parseExpression(precComparison + 1)
			if err != nil {
				return nil, err
			}
			n.AddChild(right)
			return n, nil
		}

		if !p.cur.consumeKeyword(tokenizer.NULLTOK) {
			return nil, p.errorf(ErrUnexpectedToken, "expected NULL or DISTINCT after IS")
		}
		n := p.newNode(ast.KindIsNullExpr)
		if not {
			n.SemanticFlags |= ast.FlagNot
		}
		n.AddChild(left)
		return n, nil
	}
}
