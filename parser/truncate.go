package parser

import (
	"github.com/kynessa/sqlfront/ast"
	"github.com/kynessa/sqlfront/tokenizer"
)

// parseTruncateStatement parses "TRUNCATE [TABLE] name [, name ...]
// [RESTART IDENTITY] [CASCADE|RESTRICT]"; CONTINUE IDENTITY is not
// accepted. TRUNCATE
// itself is recognized by the cursor's fallback-keyword path (spec.md
// §4.2), so it is matched here by lexeme rather than by Keyword ID.
func (p *Parser) parseTruncateStatement() (*ast.Node, error) {
	p.cur.advance() // TRUNCATE (fallback keyword)
	p.cur.consumeKeyword(tokenizer.TABLE)

	n := p.newNode(ast.KindTruncateStmt)
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

	if p.cur.isKeyword(tokenizer.RESTART) {
		p.cur.advance()
		if !p.cur.consumeKeyword(tokenizer.IDENTITY) {
			return nil, p.errorf(ErrUnexpectedToken, "expected IDENTITY after RESTART")
		}
		n.Secondary = "RESTART IDENTITY"
	}

	switch {
	case p.cur.consumeKeyword(tokenizer.CASCADE):
		n.Flags |= ast.FlagCascade
	case p.cur.consumeKeyword(tokenizer.RESTRICT):
		n.Flags |= ast.FlagRestrict
	}

	return n, nil
}
