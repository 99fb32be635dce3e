package parser

import (
	"github.com/kynessa/sqlfront/ast"
	"github.com/kynessa/sqlfront/tokenizer"
)

// parseOrderByItems parses "ORDER BY expr [ASC|DESC] [NULLS FIRST|LAST], ..."
// assuming the caller has already consumed ORDER BY. Shared between the
// SELECT statement's own ORDER BY and the ORDER BY inside an ordered-set
// aggregate call, per spec.md §4.9.
func (p *Parser) parseOrderByItems() (*ast.Node, error) {
	clause := p.newNode(ast.KindOrderByClause)
	for {
		var item *ast.Node
		var err error
		p.withContext(ast.ContextOrderByClause, func() {
			item, err = p.parseOrderByItem()
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

func (p *Parser) parseOrderByItem() (*ast.Node, error) {
	expr, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	item := p.newNode(ast.KindOrderByItem)
	item.AddChild(expr)

	switch {
	case p.cur.consumeKeyword(tokenizer.ASC):
	case p.cur.consumeKeyword(tokenizer.DESC):
		item.SemanticFlags |= ast.FlagDesc
	}

	if p.cur.consumeKeyword(tokenizer.NULLS) {
		switch {
		case p.cur.consumeKeyword(tokenizer.FIRST):
			item.SemanticFlags |= ast.FlagNullsFirst
		case p.cur.consumeKeyword(tokenizer.LAST):
			item.SemanticFlags |= ast.FlagNullsLast
		default:
			return nil, p.errorf(ErrUnexpectedToken, "expected FIRST or LAST after NULLS")
		}
	}

	return item, nil
}
