package parser

import (
	"github.com/kynessa/sqlfront/ast"
	"github.com/kynessa/sqlfront/tokenizer"
)

// parseExplainStatement parses "EXPLAIN [ANALYZE] [VERBOSE] statement".
// ANALYZE is a fallback keyword (spec.md §4.2) so it is matched by the
// cursor's lexeme-based path rather than isKeyword.
func (p *Parser) parseExplainStatement() (*ast.Node, error) {
	p.cur.advance() // EXPLAIN
	n := p.newNode(ast.KindExplainStmt)

	if p.cur.isFallbackKeyword(tokenizer.ANALYZE) {
		p.cur.advance()
		n.Secondary = "ANALYZE"
	}
	if p.cur.consumeKeyword(tokenizer.VERBOSE) {
		if n.Secondary != "" {
			n.Secondary += " "
		}
		n.Secondary += "VERBOSE"
	}

	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	n.AddChild(stmt)
	return n, nil
}
