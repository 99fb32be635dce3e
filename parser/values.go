package parser

import (
	"github.com/kynessa/sqlfront/ast"
	"github.com/kynessa/sqlfront/tokenizer"
)

// parseValuesStatement parses a bare VALUES statement: one or more
// parenthesized row constructors, usable as a standalone statement or
// (via parseRowList) as the source of an INSERT.
func (p *Parser) parseValuesStatement() (*ast.Node, error) {
	p.cur.advance() // VALUES
	n := p.newNode(ast.KindValuesStmt)
	rows, err := p.parseRowList()
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		n.AddChild(row)
	}
	return n, nil
}

// parseRowList parses a comma-separated list of parenthesized row
// constructors, without the leading VALUES keyword.
func (p *Parser) parseRowList() ([]*ast.Node, error) {
	var rows []*ast.Node
	for {
		row, err := p.parseRowConstructor()
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
		if !p.cur.consumeDelim(tokenizer.COMMA) {
			break
		}
	}
	return rows, nil
}

func (p *Parser) parseRowConstructor() (*ast.Node, error) {
	if !p.cur.consumeDelim(tokenizer.OPAREN) {
		return nil, p.errorf(ErrUnexpectedToken, "expected '(' to open row constructor")
	}
	p.parenDepth++
	n := p.newNode(ast.KindRowExpr)
	if !p.cur.isDelim(tokenizer.CPAREN) {
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
	if !p.cur.consumeDelim(tokenizer.CPAREN) {
		return nil, p.errorf(ErrUnbalancedParens, "expected ')' to close row constructor")
	}
	p.parenDepth--
	return n, nil
}
