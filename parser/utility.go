package parser

import (
	"github.com/kynessa/sqlfront/ast"
	"github.com/kynessa/sqlfront/tokenizer"
)

// parseVacuumStatement parses "VACUUM [FULL] [table]". VACUUM is a
// fallback keyword (spec.md §4.2), matched by lexeme like TRUNCATE.
func (p *Parser) parseVacuumStatement() (*ast.Node, error) {
	p.cur.advance() // VACUUM
	n := p.newNode(ast.KindUtilityStmt)
	n.Primary = "VACUUM"

	if p.cur.consumeKeyword(tokenizer.FULL) {
		n.Secondary = "FULL"
	}
	if p.cur.isIdentLike() {
		name, err := p.parseQualifiedName()
		if err != nil {
			return nil, err
		}
		n.AddChild(name)
	}
	return n, nil
}

// parseAnalyzeStatement parses "ANALYZE [table]" used as a standalone
// statement (distinct from EXPLAIN ANALYZE, and from the fallback-keyword
// tail already consumed inline by parseExplainStatement).
func (p *Parser) parseAnalyzeStatement() (*ast.Node, error) {
	p.cur.advance() // ANALYZE
	n := p.newNode(ast.KindUtilityStmt)
	n.Primary = "ANALYZE"

	if p.cur.isIdentLike() {
		name, err := p.parseQualifiedName()
		if err != nil {
			return nil, err
		}
		n.AddChild(name)
	}
	return n, nil
}

// parseAttachStatement parses "ATTACH [DATABASE] expr AS name".
func (p *Parser) parseAttachStatement() (*ast.Node, error) {
	p.cur.advance() // ATTACH
	n := p.newNode(ast.KindUtilityStmt)
	n.Primary = "ATTACH"

	if p.cur.isIdentLike() && p.cur.current().Lexeme == "DATABASE" {
		p.cur.advance()
	}
	target, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	n.AddChild(target)

	if !p.cur.consumeKeyword(tokenizer.AS) {
		return nil, p.errorf(ErrUnexpectedToken, "expected AS in ATTACH statement")
	}
	if !p.cur.isIdentLike() {
		return nil, p.errorf(ErrUnexpectedToken, "expected database alias")
	}
	alias := p.newNode(ast.KindIdentifier)
	alias.Primary = p.factory.CopyString(p.cur.current().Lexeme)
	p.cur.advance()
	n.AddChild(alias)
	return n, nil
}

// parseDetachStatement parses "DETACH [DATABASE] name".
func (p *Parser) parseDetachStatement() (*ast.Node, error) {
	p.cur.advance() // DETACH
	n := p.newNode(ast.KindUtilityStmt)
	n.Primary = "DETACH"

	if p.cur.isIdentLike() && p.cur.current().Lexeme == "DATABASE" {
		p.cur.advance()
	}
	if !p.cur.isIdentLike() {
		return nil, p.errorf(ErrUnexpectedToken, "expected database alias")
	}
	alias := p.newNode(ast.KindIdentifier)
	alias.Primary = p.factory.CopyString(p.cur.current().Lexeme)
	p.cur.advance()
	n.AddChild(alias)
	return n, nil
}

// parseReindexStatement parses "REINDEX [TABLE name | INDEX name]".
// REINDEX is a fallback keyword.
func (p *Parser) parseReindexStatement() (*ast.Node, error) {
	p.cur.advance() // REINDEX
	n := p.newNode(ast.KindUtilityStmt)
	n.Primary = "REINDEX"

	switch {
	case p.cur.consumeKeyword(tokenizer.TABLE):
		n.Secondary = "TABLE"
	case p.cur.consumeKeyword(tokenizer.INDEX):
		n.Secondary = "INDEX"
	}

	if p.cur.isIdentLike() {
		name, err := p.parseQualifiedName()
		if err != nil {
			return nil, err
		}
		n.AddChild(name)
	}
	return n, nil
}

// parsePragmaStatement parses "PRAGMA name [= value | (value)]". PRAGMA
// is a fallback keyword.
func (p *Parser) parsePragmaStatement() (*ast.Node, error) {
	p.cur.advance() // PRAGMA
	n := p.newNode(ast.KindUtilityStmt)
	n.Primary = "PRAGMA"

	if !p.cur.isIdentLike() {
		return nil, p.errorf(ErrUnexpectedToken, "expected pragma name")
	}
	name := p.newNode(ast.KindIdentifier)
	name.Primary = p.factory.CopyString(p.cur.current().Lexeme)
	p.cur.advance()
	n.AddChild(name)

	switch {
	case p.cur.current().Type == tokenizer.OP && p.cur.current().Lexeme == "=":
		p.cur.advance()
		val, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		n.AddChild(val)
	case p.cur.consumeDelim(tokenizer.OPAREN):
		val, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		n.AddChild(val)
		if !p.cur.consumeDelim(tokenizer.CPAREN) {
			return nil, p.errorf(ErrUnexpectedToken, "expected ')' after PRAGMA value")
		}
	}
	return n, nil
}
