package parser

import (
	"github.com/kynessa/sqlfront/ast"
	"github.com/kynessa/sqlfront/tokenizer"
)

// parseUnary consumes any leading unary operators (+, -, NOT) and
// bottoms out at parsePostfixPrimary. Unary sign recurses into itself so
// that "- - x" nests correctly; its operand is parsed at a precedence
// tighter than :: / [...] per the postfix-before-unary resolution
// described in expr.go, by simply parsing the operand through another
// parseUnary call rather than a fixed precedence level. NOT-as-prefix
// (the logical negation operator, not the NOT IN/LIKE/BETWEEN infix
// forms handled in expr.go) takes a full comparison-or-tighter operand,
// except NOT EXISTS: that sets FlagNot on the ExistsExpr node itself
// rather than wrapping it in a synthetic UnaryExpr, per spec.md §4.7.
func (p *Parser) parseUnary() (*ast.Node, error) {
	t := p.cur.current()

	if t.Type == tokenizer.OP && (t.Lexeme == "-" || t.Lexeme == "+") {
		p.cur.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		n := p.newNode(ast.KindUnaryExpr)
		n.Primary = t.Lexeme
		n.AddChild(operand)
		return n, nil
	}

	if t.Type == tokenizer.KEYWORD && t.Keyword == tokenizer.NOT {
		if p.cur.isKeywordAt(1, tokenizer.EXISTS) {
			p.cur.advance() // NOT
			n, err := p.parseExistsExpr()
			if err != nil {
				return nil, err
			}
			n.SemanticFlags |= ast.FlagNot
			return n, nil
		}
		p.cur.advance()
		operand, err := p.parseExpression(precComparison)
		if err != nil {
			return nil, err
		}
		n := p.newNode(ast.KindUnaryExpr)
		n.Primary = "NOT"
		n.AddChild(operand)
		return n, nil
	}

	return p.parsePostfixPrimary()
}

// parsePostfixPrimary parses one primary production, then applies any
// trailing :: casts and [...] subscripts, left to right.
func (p *Parser) parsePostfixPrimary() (*ast.Node, error) {
	n, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.cur.current().Type == tokenizer.OP && p.cur.current().Lexeme == "::":
			p.cur.advance()
			typ, err := p.parseDataType()
			if err != nil {
				return nil, err
			}
			cast := p.newNode(ast.KindCastExpr)
			cast.AddChild(n)
			cast.AddChild(typ)
			n = cast
		case p.cur.isDelim(tokenizer.OBRACK):
			p.cur.advance()
			idx, err := p.parseExpression(0)
			if err != nil {
				return nil, err
			}
			if !p.cur.consumeDelim(tokenizer.CBRACK) {
				return nil, p.errorf(ErrUnexpectedToken, "expected ']' to close subscript")
			}
			sub := p.newNode(ast.KindBinaryExpr)
			sub.Primary = "[]"
			sub.AddChild(n)
			sub.AddChild(idx)
			n = sub
		default:
			return n, nil
		}
	}
}

func (p *Parser) parsePrimary() (*ast.Node, error) {
	g := p.enterDepth()
	defer g.leave()
	if !g.ok() {
		return nil, nil
	}

	t := p.cur.current()

	switch t.Type {
	case tokenizer.NUMBER:
		return p.parseNumericLiteral()
	case tokenizer.STRING:
		p.cur.advance()
		n := p.newNode(ast.KindStringLiteral)
		n.Primary = p.factory.CopyString(unquoteString(t.Lexeme))
		return n, nil
	case tokenizer.QIDENT:
		return p.parseQualifiedIdentifier()
	case tokenizer.IDENT:
		return p.parseQualifiedIdentifier()
	case tokenizer.OPAREN:
		return p.parseParenOrRowOrSubquery()
	case tokenizer.OP:
		if t.Lexeme == "*" {
			p.cur.advance()
			return p.newNode(ast.KindStar), nil
		}
	}

	if t.Type == tokenizer.KEYWORD {
		switch t.Keyword {
		case tokenizer.TRUE, tokenizer.FALSE:
			p.cur.advance()
			n := p.newNode(ast.KindBooleanLiteral)
			n.Primary = p.factory.CopyString(t.Lexeme)
			return n, nil
		case tokenizer.NULLTOK:
			p.cur.advance()
			return p.newNode(ast.KindNullLiteral), nil
		case tokenizer.CASE:
			return p.parseCaseExpr()
		case tokenizer.CAST:
			return p.parseCastExpr()
		case tokenizer.EXTRACT:
			return p.parseExtractExpr()
		case tokenizer.EXISTS:
			return p.parseExistsExpr()
		case tokenizer.ARRAY:
			return p.parseArrayLiteral()
		case tokenizer.INTERVAL:
			return p.parseIntervalLiteral()
		case tokenizer.NOT:
			// Reached only if infixPrecedence's NOT-lookahead failed to
			// match an infix form and parseUnary didn't consume it first
			// (should not occur in practice, but fail closed rather than
			// looping).
			return nil, p.errorf(ErrUnexpectedToken, "unexpected NOT")
		default:
			// isIdentLike is false for KEYWORD tokens, so any other
			// keyword falls through to the error below; a keyword is
			// accepted as a name only after a '.' (parseQualifiedIdentifier).
			if p.cur.isIdentLike() {
				return p.parseQualifiedIdentifier()
			}
		}
	}

	return nil, p.errorf(ErrUnexpectedToken, "expected expression, found %s", t.String())
}

// parseParenOrRowOrSubquery handles the three productions that start
// with '(': a scalar subquery, a row constructor "(a, b, c)", or a
// parenthesized expression.
func (p *Parser) parseParenOrRowOrSubquery() (*ast.Node, error) {
	p.cur.advance() // (
	p.parenDepth++

	if p.cur.isKeyword(tokenizer.SELECT) || p.cur.isKeyword(tokenizer.WITH) {
		sub, err := p.parseSubqueryExpr()
		if err != nil {
			return nil, err
		}
		if !p.cur.consumeDelim(tokenizer.CPAREN) {
			return nil, p.errorf(ErrUnbalancedParens, "expected ')' after subquery")
		}
		p.parenDepth--
		return sub, nil
	}

	first, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}

	if p.cur.isDelim(tokenizer.COMMA) {
		row := p.newNode(ast.KindRowExpr)
		row.AddChild(first)
		for p.cur.consumeDelim(tokenizer.COMMA) {
			item, err := p.parseExpression(0)
			if err != nil {
				return nil, err
			}
			row.AddChild(item)
		}
		if !p.cur.consumeDelim(tokenizer.CPAREN) {
			return nil, p.errorf(ErrUnbalancedParens, "expected ')' to close row constructor")
		}
		p.parenDepth--
		return row, nil
	}

	if !p.cur.consumeDelim(tokenizer.CPAREN) {
		return nil, p.errorf(ErrUnbalancedParens, "expected ')' to close parenthesized expression")
	}
	p.parenDepth--

	paren := p.newNode(ast.KindParenExpr)
	paren.AddChild(first)
	return paren, nil
}

// parseSubqueryExpr parses a SELECT (optionally WITH-prefixed) used as an
// expression, wrapping it in a KindSubqueryExpr node. The caller is
// responsible for the surrounding parentheses.
func (p *Parser) parseSubqueryExpr() (*ast.Node, error) {
	var stmt *ast.Node
	var err error
	p.withContext(ast.ContextSubquery, func() {
		if p.cur.isKeyword(tokenizer.WITH) {
			stmt, err = p.parseWithStatement()
		} else {
			stmt, err = p.parseSelectStatement()
		}
	})
	if err != nil {
		return nil, err
	}
	n := p.newNode(ast.KindSubqueryExpr)
	n.AddChild(stmt)
	return n, nil
}

func (p *Parser) parseExistsExpr() (*ast.Node, error) {
	p.cur.advance() // EXISTS
	if !p.cur.consumeDelim(tokenizer.OPAREN) {
		return nil, p.errorf(ErrUnexpectedToken, "expected '(' after EXISTS")
	}
	p.parenDepth++
	sub, err := p.parseSubqueryExpr()
	if err != nil {
		return nil, err
	}
	if !p.cur.consumeDelim(tokenizer.CPAREN) {
		return nil, p.errorf(ErrUnbalancedParens, "expected ')' after EXISTS subquery")
	}
	p.parenDepth--
	n := p.newNode(ast.KindExistsExpr)
	n.AddChild(sub)
	return n, nil
}

// parseCaseExpr handles both the simple form (CASE expr WHEN val THEN ...)
// and the searched form (CASE WHEN cond THEN ...), distinguished by
// whether a WHEN immediately follows CASE.
func (p *Parser) parseCaseExpr() (*ast.Node, error) {
	p.cur.advance() // CASE
	n := p.newNode(ast.KindCaseExpr)

	// Simple form carries its operand as the first child, distinguishable
	// downstream from the searched form because that child's Kind is never
	// KindWhenClause.
	if !p.cur.isKeyword(tokenizer.WHEN) {
		operand, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		n.AddChild(operand)
	}

	whenCount := 0
	for p.cur.consumeKeyword(tokenizer.WHEN) {
		when := p.newNode(ast.KindWhenClause)
		cond, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		if !p.cur.consumeKeyword(tokenizer.THEN) {
			return nil, p.errorf(ErrUnexpectedToken, "expected THEN in CASE expression")
		}
		result, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		when.AddChild(cond)
		when.AddChild(result)
		n.AddChild(when)
		whenCount++
	}

	if whenCount == 0 {
		return nil, p.errorf(ErrUnexpectedToken, "CASE expression requires at least one WHEN")
	}

	if p.cur.consumeKeyword(tokenizer.ELSE) {
		elseExpr, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		n.AddChild(elseExpr)
	}

	if !p.cur.consumeKeyword(tokenizer.END) {
		return nil, p.errorf(ErrUnexpectedToken, "expected END to close CASE expression")
	}
	return n, nil
}

func (p *Parser) parseCastExpr() (*ast.Node, error) {
	p.cur.advance() // CAST
	if !p.cur.consumeDelim(tokenizer.OPAREN) {
		return nil, p.errorf(ErrUnexpectedToken, "expected '(' after CAST")
	}
	p.parenDepth++
	operand, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if !p.cur.consumeKeyword(tokenizer.AS) {
		return nil, p.errorf(ErrUnexpectedToken, "expected AS in CAST expression")
	}
	typ, err := p.parseDataType()
	if err != nil {
		return nil, err
	}
	if !p.cur.consumeDelim(tokenizer.CPAREN) {
		return nil, p.errorf(ErrUnbalancedParens, "expected ')' to close CAST")
	}
	p.parenDepth--
	n := p.newNode(ast.KindCastExpr)
	n.AddChild(operand)
	n.AddChild(typ)
	return n, nil
}

func (p *Parser) parseExtractExpr() (*ast.Node, error) {
	p.cur.advance() // EXTRACT
	if !p.cur.consumeDelim(tokenizer.OPAREN) {
		return nil, p.errorf(ErrUnexpectedToken, "expected '(' after EXTRACT")
	}
	p.parenDepth++
	if !p.cur.isIdentLike() && p.cur.current().Type != tokenizer.KEYWORD {
		return nil, p.errorf(ErrUnexpectedToken, "expected field name in EXTRACT")
	}
	field := p.newNode(ast.KindIdentifier)
	field.Primary = p.factory.CopyString(p.cur.current().Lexeme)
	p.cur.advance()
	if !p.cur.consumeKeyword(tokenizer.FROM) {
		return nil, p.errorf(ErrUnexpectedToken, "expected FROM in EXTRACT")
	}
	source, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if !p.cur.consumeDelim(tokenizer.CPAREN) {
		return nil, p.errorf(ErrUnbalancedParens, "expected ')' to close EXTRACT")
	}
	p.parenDepth--
	n := p.newNode(ast.KindExtractExpr)
	n.AddChild(field)
	n.AddChild(source)
	return n, nil
}

// parseArrayLiteral handles ARRAY[e1, e2, ...] and ARRAY(subquery).
func (p *Parser) parseArrayLiteral() (*ast.Node, error) {
	p.cur.advance() // ARRAY
	n := p.newNode(ast.KindArrayExpr)

	if p.cur.isDelim(tokenizer.OPAREN) {
		p.cur.advance()
		p.parenDepth++
		sub, err := p.parseSubqueryExpr()
		if err != nil {
			return nil, err
		}
		if !p.cur.consumeDelim(tokenizer.CPAREN) {
			return nil, p.errorf(ErrUnbalancedParens, "expected ')' to close ARRAY subquery")
		}
		p.parenDepth--
		n.AddChild(sub)
		return n, nil
	}

	if !p.cur.consumeDelim(tokenizer.OBRACK) {
		return nil, p.errorf(ErrUnexpectedToken, "expected '[' after ARRAY")
	}
	if !p.cur.isDelim(tokenizer.CBRACK) {
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
	}
	if !p.cur.consumeDelim(tokenizer.CBRACK) {
		return nil, p.errorf(ErrUnexpectedToken, "expected ']' to close ARRAY literal")
	}
	return n, nil
}

// parseIntervalLiteral parses INTERVAL 'n unit' followed by at most two
// trailing qualifier words, stored space-joined in Secondary (e.g.
// INTERVAL '1' DAY). A third word, or a compound qualifier such as
// INTERVAL '1-2' YEAR TO MONTH, is rejected with ErrMalformedLiteral.
func (p *Parser) parseIntervalLiteral() (*ast.Node, error) {
	p.cur.advance() // INTERVAL
	if p.cur.current().Type != tokenizer.STRING {
		return nil, p.errorf(ErrMalformedLiteral, "expected string literal after INTERVAL")
	}
	lit := unquoteString(p.cur.current().Lexeme)
	p.cur.advance()

	n := p.newNode(ast.KindIntervalExpr)
	n.Primary = p.factory.CopyString(lit)

	words := 0
	for p.cur.isIdentLike() {
		if words >= 2 {
			return nil, p.errorf(ErrMalformedLiteral, "too many trailing qualifier words on INTERVAL literal")
		}
		if n.Secondary != "" {
			n.Secondary += " "
		}
		n.Secondary += p.cur.current().Lexeme
		p.cur.advance()
		words++
	}
	if words > 0 && p.cur.isKeyword(tokenizer.TO) {
		return nil, p.errorf(ErrMalformedLiteral, "compound X TO Y qualifier on INTERVAL literal is not supported")
	}
	return n, nil
}

// parseDataType parses a type name with optional precision/scale args and
// any number of trailing "[]" array suffixes, e.g. NUMERIC(10, 2)[].
func (p *Parser) parseDataType() (*ast.Node, error) {
	if !p.cur.isIdentLike() && p.cur.current().Type != tokenizer.KEYWORD {
		return nil, p.errorf(ErrUnexpectedToken, "expected type name")
	}
	n := p.newNode(ast.KindDataType)
	n.Primary = p.factory.CopyString(p.cur.current().Lexeme)
	p.cur.advance()

	for p.cur.isIdentLike() {
		n.Primary += " " + p.cur.current().Lexeme
		p.cur.advance()
	}

	if p.cur.consumeDelim(tokenizer.OPAREN) {
		p.parenDepth++
		for {
			arg, err := p.parseExpression(0)
			if err != nil {
				return nil, err
			}
			n.AddChild(arg)
			if !p.cur.consumeDelim(tokenizer.COMMA) {
				break
			}
		}
		if !p.cur.consumeDelim(tokenizer.CPAREN) {
			return nil, p.errorf(ErrUnbalancedParens, "expected ')' to close type arguments")
		}
		p.parenDepth--
	}

	for p.cur.isDelim(tokenizer.OBRACK) {
		p.cur.advance()
		if !p.cur.consumeDelim(tokenizer.CBRACK) {
			return nil, p.errorf(ErrUnexpectedToken, "expected ']' in array type suffix")
		}
		n.Primary += "[]"
	}

	return n, nil
}
