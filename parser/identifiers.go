package parser

import (
	"strings"

	"github.com/kynessa/sqlfront/ast"
	"github.com/kynessa/sqlfront/tokenizer"
)

// parseQualifiedIdentifier parses a dot-separated name chain (schema.
// table.column, a bare identifier, or a qualified star t.*) and, when
// the chain is immediately followed by '(', hands off to the function
// call production. A soft keyword (one that LookupKeyword resolves but
// that is being used where only a name is grammatically possible) is
// accepted as a name part, matching real SQL's treatment of
// non-reserved keywords.
func (p *Parser) parseQualifiedIdentifier() (*ast.Node, error) {
	var parts []string

	for {
		t := p.cur.current()
		switch t.Type {
		case tokenizer.QIDENT:
			parts = append(parts, unquoteIdent(t.Lexeme))
		case tokenizer.IDENT:
			parts = append(parts, t.Lexeme)
		case tokenizer.KEYWORD:
			parts = append(parts, t.Lexeme)
		default:
			return nil, p.errorf(ErrUnexpectedToken, "expected identifier")
		}
		p.cur.advance()

		if p.cur.isDelim(tokenizer.DOT) {
			if p.cur.peek().Type == tokenizer.OP && p.cur.peek().Lexeme == "*" {
				p.cur.advance() // .
				p.cur.advance() // *
				star := p.newNode(ast.KindStar)
				star.Secondary = p.factory.CopyString(strings.Join(parts, "."))
				return star, nil
			}
			p.cur.advance() // .
			continue
		}
		break
	}

	if p.cur.isDelim(tokenizer.OPAREN) {
		return p.parseFunctionCall(parts)
	}

	name := parts[len(parts)-1]
	if len(parts) == 1 {
		n := p.newNode(ast.KindIdentifier)
		n.Primary = p.factory.CopyString(name)
		return n, nil
	}

	n := p.newNode(ast.KindColumnRef)
	n.Primary = p.factory.CopyString(name)
	n.Secondary = p.factory.CopyString(strings.Join(parts[:len(parts)-1], "."))
	return n, nil
}

// parseFunctionCall parses a call's argument list, modifiers (DISTINCT/
// ALL, the ORDER BY of an ordered-set aggregate, FILTER, OVER) once the
// dot-chain naming the function has already been collected.
func (p *Parser) parseFunctionCall(parts []string) (*ast.Node, error) {
	n := p.newNode(ast.KindFunctionCall)
	n.Primary = p.factory.CopyString(parts[len(parts)-1])
	if len(parts) > 1 {
		n.Secondary = p.factory.CopyString(strings.Join(parts[:len(parts)-1], "."))
	}

	p.cur.advance() // (
	p.parenDepth++

	switch {
	case p.cur.consumeKeyword(tokenizer.DISTINCT):
		n.Flags |= ast.FlagDistinct
	case p.cur.consumeKeyword(tokenizer.ALL):
		n.Flags |= ast.FlagAll
	}

	var args *ast.Node
	switch {
	case p.cur.isDelim(tokenizer.CPAREN):
		args = p.newNode(ast.KindList)
	case p.cur.current().Type == tokenizer.OP && p.cur.current().Lexeme == "*":
		p.cur.advance()
		args = p.newNode(ast.KindList)
		args.AddChild(p.newNode(ast.KindStar))
	default:
		args = p.newNode(ast.KindList)
		for {
			var arg *ast.Node
			var err error
			p.withContext(ast.ContextFunctionArg, func() {
				arg, err = p.parseExpression(0)
			})
			if err != nil {
				return nil, err
			}
			args.AddChild(arg)
			if !p.cur.consumeDelim(tokenizer.COMMA) {
				break
			}
		}
	}
	n.AddChild(args)

	if p.cur.isKeyword(tokenizer.ORDER) {
		p.cur.advance()
		if !p.cur.consumeKeyword(tokenizer.BY) {
			return nil, p.errorf(ErrUnexpectedToken, "expected BY after ORDER")
		}
		ob, err := p.parseOrderByItems()
		if err != nil {
			return nil, err
		}
		n.AddChild(ob)
	}

	if !p.cur.consumeDelim(tokenizer.CPAREN) {
		return nil, p.errorf(ErrUnbalancedParens, "expected ')' to close function call")
	}
	p.parenDepth--

	if p.cur.isKeyword(tokenizer.FILTER) {
		p.cur.advance()
		if !p.cur.consumeDelim(tokenizer.OPAREN) {
			return nil, p.errorf(ErrUnexpectedToken, "expected '(' after FILTER")
		}
		p.parenDepth++
		if !p.cur.consumeKeyword(tokenizer.WHERE) {
			return nil, p.errorf(ErrUnexpectedToken, "expected WHERE inside FILTER")
		}
		cond, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		if !p.cur.consumeDelim(tokenizer.CPAREN) {
			return nil, p.errorf(ErrUnbalancedParens, "expected ')' to close FILTER")
		}
		p.parenDepth--
		where := p.newNode(ast.KindWhereClause)
		where.AddChild(cond)
		n.AddChild(where)
	}

	if p.cur.consumeKeyword(tokenizer.OVER) {
		n.SemanticFlags |= ast.FlagIsWindowFunc
		if p.cur.isIdentLike() {
			ref := p.newNode(ast.KindIdentifier)
			ref.Primary = p.factory.CopyString(p.cur.current().Lexeme)
			p.cur.advance()
			n.AddChild(ref)
		} else {
			if !p.cur.consumeDelim(tokenizer.OPAREN) {
				return nil, p.errorf(ErrUnexpectedToken, "expected '(' or window name after OVER")
			}
			p.parenDepth++
			spec, err := p.parseWindowSpecBody()
			if err != nil {
				return nil, err
			}
			if !p.cur.consumeDelim(tokenizer.CPAREN) {
				return nil, p.errorf(ErrUnbalancedParens, "expected ')' to close OVER clause")
			}
			p.parenDepth--
			n.AddChild(spec)
		}
	}

	return n, nil
}
