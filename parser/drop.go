package parser

import (
	"github.com/kynessa/sqlfront/ast"
	"github.com/kynessa/sqlfront/tokenizer"
)

// parseDropStatement parses "DROP {TABLE|INDEX|VIEW|TRIGGER|SCHEMA}
// [IF EXISTS] name [, name ...] [CASCADE|RESTRICT]".
func (p *Parser) parseDropStatement() (*ast.Node, error) {
	p.cur.advance() // DROP

	n := p.newNode(ast.KindDropStmt)
	switch {
	case p.cur.consumeKeyword(tokenizer.TABLE):
		n.Primary = "TABLE"
	case p.cur.consumeKeyword(tokenizer.INDEX):
		n.Primary = "INDEX"
	case p.cur.consumeKeyword(tokenizer.VIEW):
		n.Primary = "VIEW"
	case p.cur.consumeKeyword(tokenizer.TRIGGER):
		n.Primary = "TRIGGER"
	case p.cur.consumeKeyword(tokenizer.SCHEMA):
		n.Primary = "SCHEMA"
	default:
		return nil, p.errorf(ErrUnexpectedToken, "expected TABLE, INDEX, VIEW, TRIGGER, or SCHEMA after DROP")
	}

	if p.cur.isKeyword(tokenizer.IF) {
		p.cur.advance()
		if !p.cur.consumeKeyword(tokenizer.EXISTS) {
			return nil, p.errorf(ErrUnexpectedToken, "expected EXISTS after IF")
		}
		n.Flags |= ast.FlagIfExists
	}

	names := p.newNode(ast.KindList)
	for {
		name, err := p.parseQualifiedName()
		if err != nil {
			return nil, err
		}
		names.AddChild(name)
		if !p.cur.consumeDelim(tokenizer.COMMA) {
			break
		}
	}
	n.AddChild(names)

	switch {
	case p.cur.consumeKeyword(tokenizer.CASCADE):
		n.Flags |= ast.FlagCascade
	case p.cur.consumeKeyword(tokenizer.RESTRICT):
		n.Flags |= ast.FlagRestrict
	}

	return n, nil
}
