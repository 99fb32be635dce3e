package parser

import (
	"github.com/kynessa/sqlfront/ast"
	"github.com/kynessa/sqlfront/tokenizer"
)

// parseWithStatement parses "WITH [RECURSIVE] name [(cols)] AS (stmt),
// ... primary_statement". The primary statement the CTEs feed (SELECT,
// or a data-modifying statement carrying its own RETURNING clause) is
// the root of the returned tree; the CTE definitions are collected under
// a KindWithClause node appended as one of that root's children, so
// Parse("WITH ... SELECT ...") returns a SELECT-rooted (or INSERT/UPDATE/
// DELETE-rooted) AST rather than a WithClause-rooted one.
func (p *Parser) parseWithStatement() (*ast.Node, error) {
	p.cur.advance() // WITH
	with := p.newNode(ast.KindWithClause)
	if p.cur.consumeKeyword(tokenizer.RECURSIVE) {
		with.Flags |= ast.FlagRecursive
	}

	for {
		def, err := p.parseCTEDefinition()
		if err != nil {
			return nil, err
		}
		with.AddChild(def)
		if !p.cur.consumeDelim(tokenizer.COMMA) {
			break
		}
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	body.AddChild(with)
	return body, nil
}

func (p *Parser) parseCTEDefinition() (*ast.Node, error) {
	if !p.cur.isIdentLike() {
		return nil, p.errorf(ErrUnexpectedToken, "expected CTE name")
	}
	def := p.newNode(ast.KindCTEDefinition)
	def.Primary = p.factory.CopyString(p.cur.current().Lexeme)
	p.cur.advance()

	if p.cur.consumeDelim(tokenizer.OPAREN) {
		p.parenDepth++
		cols := p.newNode(ast.KindList)
		for {
			if !p.cur.isIdentLike() {
				return nil, p.errorf(ErrUnexpectedToken, "expected column name in CTE column list")
			}
			col := p.newNode(ast.KindIdentifier)
			col.Primary = p.factory.CopyString(p.cur.current().Lexeme)
			p.cur.advance()
			cols.AddChild(col)
			if !p.cur.consumeDelim(tokenizer.COMMA) {
				break
			}
		}
		if !p.cur.consumeDelim(tokenizer.CPAREN) {
			return nil, p.errorf(ErrUnbalancedParens, "expected ')' to close CTE column list")
		}
		p.parenDepth--
		def.AddChild(cols)
	}

	if !p.cur.consumeKeyword(tokenizer.AS) {
		return nil, p.errorf(ErrUnexpectedToken, "expected AS in CTE definition")
	}

	if !p.cur.consumeDelim(tokenizer.OPAREN) {
		return nil, p.errorf(ErrUnexpectedToken, "expected '(' after AS in CTE definition")
	}
	p.parenDepth++
	var body *ast.Node
	var err error
	p.withContext(ast.ContextSubquery, func() {
		body, err = p.parseStatement()
	})
	if err != nil {
		return nil, err
	}
	if !p.cur.consumeDelim(tokenizer.CPAREN) {
		return nil, p.errorf(ErrUnbalancedParens, "expected ')' to close CTE body")
	}
	p.parenDepth--
	def.AddChild(body)
	return def, nil
}
