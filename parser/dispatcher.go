package parser

import "github.com/kynessa/sqlfront/ast"
import "github.com/kynessa/sqlfront/tokenizer"

// parseStatement examines the leading keyword(s), or a '(' opening a
// parenthesized SELECT arm, and routes to the matching statement parser,
// per the dispatch table in spec.md §4.4.
func (p *Parser) parseStatement() (*ast.Node, error) {
	g := p.enterDepth()
	defer g.leave()
	if !g.ok() {
		return nil, nil
	}

	p.cur.skipTrivia()
	p.traceDispatch("parseStatement")

	switch {
	case p.cur.isKeyword(tokenizer.WITH):
		return p.parseWithStatement()
	case p.cur.isKeyword(tokenizer.SELECT), p.cur.isDelim(tokenizer.OPAREN):
		return p.parseSelectStatement()
	case p.cur.isKeyword(tokenizer.VALUES):
		return p.parseValuesStatement()
	case p.cur.isKeyword(tokenizer.INSERT):
		return p.parseInsertStatement()
	case p.cur.isKeyword(tokenizer.UPDATE):
		return p.parseUpdateStatement()
	case p.cur.isKeyword(tokenizer.DELETE):
		return p.parseDeleteStatement()
	case p.cur.isKeyword(tokenizer.CREATE):
		return p.parseCreateStatement()
	case p.cur.isKeyword(tokenizer.DROP):
		return p.parseDropStatement()
	case p.cur.isKeyword(tokenizer.ALTER):
		return p.parseAlterTableStatement()
	case p.cur.isFallbackKeyword(tokenizer.TRUNCATE):
		return p.parseTruncateStatement()
	case p.cur.isKeyword(tokenizer.BEGIN), p.cur.isKeyword(tokenizer.START),
		p.cur.isKeyword(tokenizer.COMMIT), p.cur.isKeyword(tokenizer.ROLLBACK),
		p.cur.isKeyword(tokenizer.SAVEPOINT), p.cur.isKeyword(tokenizer.RELEASE):
		return p.parseTransactionStatement()
	case p.cur.isKeyword(tokenizer.EXPLAIN):
		return p.parseExplainStatement()
	case p.cur.isKeyword(tokenizer.SET):
		return p.parseSetStatement()
	case p.cur.isFallbackKeyword(tokenizer.VACUUM):
		return p.parseVacuumStatement()
	case p.cur.isFallbackKeyword(tokenizer.ANALYZE):
		return p.parseAnalyzeStatement()
	case p.cur.isFallbackKeyword(tokenizer.ATTACH):
		return p.parseAttachStatement()
	case p.cur.isFallbackKeyword(tokenizer.DETACH):
		return p.parseDetachStatement()
	case p.cur.isFallbackKeyword(tokenizer.REINDEX):
		return p.parseReindexStatement()
	case p.cur.isFallbackKeyword(tokenizer.PRAGMA):
		return p.parsePragmaStatement()
	}

	return nil, p.errorf(ErrUnexpectedToken, "no statement recognized")
}
