package parser

import (
	"github.com/kynessa/sqlfront/ast"
	"github.com/kynessa/sqlfront/tokenizer"
)

// parseTransactionStatement parses BEGIN, START TRANSACTION, COMMIT,
// ROLLBACK [TO SAVEPOINT name], SAVEPOINT name, and RELEASE [SAVEPOINT]
// name, each becoming a KindTransactionStmt tagged by Primary.
func (p *Parser) parseTransactionStatement() (*ast.Node, error) {
	n := p.newNode(ast.KindTransactionStmt)

	switch {
	case p.cur.consumeKeyword(tokenizer.BEGIN):
		n.Primary = "BEGIN"
		p.cur.consumeKeyword(tokenizer.TRANSACTION)
		p.parseIsolationLevelTail(n)
		return n, nil

	case p.cur.consumeKeyword(tokenizer.START):
		if !p.cur.consumeKeyword(tokenizer.TRANSACTION) {
			return nil, p.errorf(ErrUnexpectedToken, "expected TRANSACTION after START")
		}
		n.Primary = "START TRANSACTION"
		p.parseIsolationLevelTail(n)
		return n, nil

	case p.cur.consumeKeyword(tokenizer.COMMIT):
		n.Primary = "COMMIT"
		return n, nil

	case p.cur.consumeKeyword(tokenizer.ROLLBACK):
		n.Primary = "ROLLBACK"
		if p.cur.consumeKeyword(tokenizer.TO) {
			p.cur.consumeKeyword(tokenizer.SAVEPOINT)
			if !p.cur.isIdentLike() {
				return nil, p.errorf(ErrUnexpectedToken, "expected savepoint name")
			}
			sp := p.newNode(ast.KindIdentifier)
			sp.Primary = p.factory.CopyString(p.cur.current().Lexeme)
			p.cur.advance()
			n.AddChild(sp)
		}
		return n, nil

	case p.cur.consumeKeyword(tokenizer.SAVEPOINT):
		n.Primary = "SAVEPOINT"
		if !p.cur.isIdentLike() {
			return nil, p.errorf(ErrUnexpectedToken, "expected savepoint name")
		}
		sp := p.newNode(ast.KindIdentifier)
		sp.Primary = p.factory.CopyString(p.cur.current().Lexeme)
		p.cur.advance()
		n.AddChild(sp)
		return n, nil

	case p.cur.consumeKeyword(tokenizer.RELEASE):
		n.Primary = "RELEASE"
		p.cur.consumeKeyword(tokenizer.SAVEPOINT)
		if !p.cur.isIdentLike() {
			return nil, p.errorf(ErrUnexpectedToken, "expected savepoint name")
		}
		sp := p.newNode(ast.KindIdentifier)
		sp.Primary = p.factory.CopyString(p.cur.current().Lexeme)
		p.cur.advance()
		n.AddChild(sp)
		return n, nil
	}

	return nil, p.errorf(ErrUnexpectedToken, "expected transaction control statement")
}

func (p *Parser) parseIsolationLevelTail(n *ast.Node) {
	if !p.cur.consumeKeyword(tokenizer.ISOLATION) {
		return
	}
	p.cur.consumeKeyword(tokenizer.LEVEL)
	switch {
	case p.cur.consumeKeyword(tokenizer.READ):
		switch {
		case p.cur.consumeKeyword(tokenizer.WRITE):
			n.Secondary = "READ WRITE"
		case p.cur.consumeKeyword(tokenizer.ONLY):
			n.Secondary = "READ ONLY"
		}
	default:
		if p.cur.isIdentLike() {
			n.Secondary = p.cur.current().Lexeme
			p.cur.advance()
		}
	}
}
