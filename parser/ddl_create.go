package parser

import (
	"github.com/kynessa/sqlfront/ast"
	"github.com/kynessa/sqlfront/tokenizer"
)

// parseCreateStatement resolves the CREATE-family ambiguity by a short
// run of lookahead over the optional OR REPLACE / UNIQUE / TEMP(ORARY)
// modifiers before dispatching on the object keyword (TABLE, INDEX,
// VIEW, TRIGGER, SCHEMA), per spec.md §4.10.
func (p *Parser) parseCreateStatement() (*ast.Node, error) {
	p.cur.advance() // CREATE

	var flags ast.Flags
	if p.cur.consumeKeyword(tokenizer.OR) {
		if !p.cur.consumeKeyword(tokenizer.REPLACE) {
			return nil, p.errorf(ErrUnexpectedToken, "expected REPLACE after OR")
		}
		flags |= ast.FlagOrReplace
	}

	unique := p.cur.consumeKeyword(tokenizer.UNIQUE)

	if p.cur.consumeKeyword(tokenizer.TEMPORARY) || p.cur.consumeKeyword(tokenizer.TEMP) {
		flags |= ast.FlagTemporary
	}

	switch {
	case p.cur.consumeKeyword(tokenizer.TABLE):
		return p.parseCreateTable(flags)
	case p.cur.consumeKeyword(tokenizer.INDEX):
		return p.parseCreateIndex(unique)
	case p.cur.consumeKeyword(tokenizer.VIEW):
		return p.parseCreateView(flags)
	case p.cur.consumeKeyword(tokenizer.TRIGGER):
		return p.parseCreateTrigger()
	case p.cur.consumeKeyword(tokenizer.SCHEMA):
		return p.parseCreateSchema(flags)
	}

	return nil, p.errorf(ErrUnexpectedToken, "expected TABLE, INDEX, VIEW, TRIGGER, or SCHEMA after CREATE")
}

// parseQualifiedName parses a dot-separated name with no alias, for
// contexts (CREATE TABLE, ALTER TABLE, ...) where an alias is never
// grammatically valid.
func (p *Parser) parseQualifiedName() (*ast.Node, error) {
	if !p.cur.isIdentLike() {
		return nil, p.errorf(ErrUnexpectedToken, "expected name")
	}
	var parts []string
	for {
		parts = append(parts, p.cur.current().Lexeme)
		p.cur.advance()
		if p.cur.consumeDelim(tokenizer.DOT) {
			continue
		}
		break
	}
	n := p.newNode(ast.KindTableRef)
	n.Primary = p.factory.CopyString(parts[len(parts)-1])
	if len(parts) > 1 {
		n.Secondary = p.factory.CopyString(joinDot(parts[:len(parts)-1]))
	}
	return n, nil
}

func (p *Parser) parseIfNotExists() bool {
	if p.cur.isKeyword(tokenizer.IF) {
		p.cur.advance()
		p.cur.consumeKeyword(tokenizer.NOT)
		p.cur.consumeKeyword(tokenizer.EXISTS)
		return true
	}
	return false
}

func (p *Parser) parseCreateTable(flags ast.Flags) (*ast.Node, error) {
	n := p.newNode(ast.KindCreateTableStmt)
	n.Flags |= flags
	if p.parseIfNotExists() {
		n.Flags |= ast.FlagIfNotExists
	}

	name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	n.AddChild(name)

	if !p.cur.consumeDelim(tokenizer.OPAREN) {
		return nil, p.errorf(ErrUnexpectedToken, "expected '(' to open column list")
	}
	p.parenDepth++

	for {
		var item *ast.Node
		if p.cur.matchesAny(tokenizer.PRIMARY, tokenizer.UNIQUE, tokenizer.CHECK, tokenizer.FOREIGN, tokenizer.CONSTRAINT) {
			item, err = p.parseTableConstraint()
		} else {
			item, err = p.parseColumnDef()
		}
		if err != nil {
			return nil, err
		}
		n.AddChild(item)
		if !p.cur.consumeDelim(tokenizer.COMMA) {
			break
		}
	}

	if !p.cur.consumeDelim(tokenizer.CPAREN) {
		return nil, p.errorf(ErrUnbalancedParens, "expected ')' to close column list")
	}
	p.parenDepth--
	return n, nil
}

func (p *Parser) parseColumnDef() (*ast.Node, error) {
	if !p.cur.isIdentLike() {
		return nil, p.errorf(ErrUnexpectedToken, "expected column name")
	}
	n := p.newNode(ast.KindColumnDef)
	n.Primary = p.factory.CopyString(p.cur.current().Lexeme)
	p.cur.advance()

	typ, err := p.parseDataType()
	if err != nil {
		return nil, err
	}
	n.AddChild(typ)

	for {
		c, err := p.tryParseColumnConstraint()
		if err != nil {
			return nil, err
		}
		if c == nil {
			break
		}
		n.AddChild(c)
	}
	return n, nil
}

func (p *Parser) tryParseColumnConstraint() (*ast.Node, error) {
	switch {
	case p.cur.consumeKeyword(tokenizer.NOT):
		if !p.cur.consumeKeyword(tokenizer.NULLTOK) {
			return nil, p.errorf(ErrUnexpectedToken, "expected NULL after NOT")
		}
		n := p.newNode(ast.KindColumnConstraint)
		n.Primary = "NOT NULL"
		return n, nil
	case p.cur.consumeKeyword(tokenizer.NULLTOK):
		n := p.newNode(ast.KindColumnConstraint)
		n.Primary = "NULL"
		return n, nil
	case p.cur.isKeyword(tokenizer.PRIMARY):
		p.cur.advance()
		if !p.cur.consumeKeyword(tokenizer.KEY) {
			return nil, p.errorf(ErrUnexpectedToken, "expected KEY after PRIMARY")
		}
		n := p.newNode(ast.KindColumnConstraint)
		n.Primary = "PRIMARY KEY"
		return n, nil
	case p.cur.consumeKeyword(tokenizer.UNIQUE):
		n := p.newNode(ast.KindColumnConstraint)
		n.Primary = "UNIQUE"
		return n, nil
	case p.cur.consumeKeyword(tokenizer.DEFAULT):
		n := p.newNode(ast.KindColumnConstraint)
		n.Primary = "DEFAULT"
		val, err := p.parseExpression(precOr)
		if err != nil {
			return nil, err
		}
		n.AddChild(val)
		return n, nil
	case p.cur.isKeyword(tokenizer.CHECK):
		p.cur.advance()
		if !p.cur.consumeDelim(tokenizer.OPAREN) {
			return nil, p.errorf(ErrUnexpectedToken, "expected '(' after CHECK")
		}
		p.parenDepth++
		cond, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		if !p.cur.consumeDelim(tokenizer.CPAREN) {
			return nil, p.errorf(ErrUnbalancedParens, "expected ')' to close CHECK")
		}
		p.parenDepth--
		n := p.newNode(ast.KindColumnConstraint)
		n.Primary = "CHECK"
		n.AddChild(cond)
		return n, nil
	case p.cur.consumeKeyword(tokenizer.REFERENCES):
		ref, err := p.parseQualifiedName()
		if err != nil {
			return nil, err
		}
		n := p.newNode(ast.KindColumnConstraint)
		n.Primary = "REFERENCES"
		n.AddChild(ref)
		if p.cur.isDelim(tokenizer.OPAREN) {
			cols, err := p.parseColumnNameList()
			if err != nil {
				return nil, err
			}
			n.AddChild(cols)
		}
		return n, nil
	case p.cur.consumeKeyword(tokenizer.COLLATE):
		if !p.cur.isIdentLike() {
			return nil, p.errorf(ErrUnexpectedToken, "expected collation name")
		}
		n := p.newNode(ast.KindColumnConstraint)
		n.Primary = "COLLATE " + p.cur.current().Lexeme
		p.cur.advance()
		return n, nil
	}
	return nil, nil
}

// parseTableConstraint parses a table-level constraint: an optional
// named CONSTRAINT wrapper around PRIMARY KEY(cols), UNIQUE(cols),
// CHECK(expr), or FOREIGN KEY(cols) REFERENCES table(cols).
func (p *Parser) parseTableConstraint() (*ast.Node, error) {
	n := p.newNode(ast.KindTableConstraint)
	if p.cur.consumeKeyword(tokenizer.CONSTRAINT) {
		if !p.cur.isIdentLike() {
			return nil, p.errorf(ErrUnexpectedToken, "expected constraint name")
		}
		n.Secondary = p.factory.CopyString(p.cur.current().Lexeme)
		p.cur.advance()
	}

	switch {
	case p.cur.consumeKeyword(tokenizer.PRIMARY):
		if !p.cur.consumeKeyword(tokenizer.KEY) {
			return nil, p.errorf(ErrUnexpectedToken, "expected KEY after PRIMARY")
		}
		n.Primary = "PRIMARY KEY"
		cols, err := p.parseColumnNameList()
		if err != nil {
			return nil, err
		}
		n.AddChild(cols)
	case p.cur.consumeKeyword(tokenizer.UNIQUE):
		n.Primary = "UNIQUE"
		cols, err := p.parseColumnNameList()
		if err != nil {
			return nil, err
		}
		n.AddChild(cols)
	case p.cur.consumeKeyword(tokenizer.CHECK):
		n.Primary = "CHECK"
		if !p.cur.consumeDelim(tokenizer.OPAREN) {
			return nil, p.errorf(ErrUnexpectedToken, "expected '(' after CHECK")
		}
		p.parenDepth++
		cond, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		if !p.cur.consumeDelim(tokenizer.CPAREN) {
			return nil, p.errorf(ErrUnbalancedParens, "expected ')' to close CHECK")
		}
		p.parenDepth--
		n.AddChild(cond)
	case p.cur.consumeKeyword(tokenizer.FOREIGN):
		if !p.cur.consumeKeyword(tokenizer.KEY) {
			return nil, p.errorf(ErrUnexpectedToken, "expected KEY after FOREIGN")
		}
		n.Primary = "FOREIGN KEY"
		cols, err := p.parseColumnNameList()
		if err != nil {
			return nil, err
		}
		n.AddChild(cols)
		if !p.cur.consumeKeyword(tokenizer.REFERENCES) {
			return nil, p.errorf(ErrMissingClause, "expected REFERENCES in FOREIGN KEY constraint")
		}
		ref, err := p.parseQualifiedName()
		if err != nil {
			return nil, err
		}
		n.AddChild(ref)
		if p.cur.isDelim(tokenizer.OPAREN) {
			refCols, err := p.parseColumnNameList()
			if err != nil {
				return nil, err
			}
			n.AddChild(refCols)
		}
	default:
		return nil, p.errorf(ErrUnexpectedToken, "expected PRIMARY KEY, UNIQUE, CHECK, or FOREIGN KEY")
	}
	return n, nil
}

// parseCreateIndex parses "CREATE [UNIQUE] INDEX [IF NOT EXISTS] name ON
// table (col [ASC|DESC], ...) [WHERE cond]".
func (p *Parser) parseCreateIndex(unique bool) (*ast.Node, error) {
	n := p.newNode(ast.KindCreateIndexStmt)
	if unique {
		n.Flags |= ast.FlagUnique
	}
	if p.parseIfNotExists() {
		n.Flags |= ast.FlagIfNotExists
	}

	name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	n.AddChild(name)

	if !p.cur.consumeKeyword(tokenizer.ON) {
		return nil, p.errorf(ErrUnexpectedToken, "expected ON in CREATE INDEX")
	}
	table, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	n.AddChild(table)

	if !p.cur.consumeDelim(tokenizer.OPAREN) {
		return nil, p.errorf(ErrUnexpectedToken, "expected '(' to open index column list")
	}
	p.parenDepth++
	cols := p.newNode(ast.KindList)
	for {
		expr, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		col := p.newNode(ast.KindIndexColumn)
		col.AddChild(expr)
		switch {
		case p.cur.consumeKeyword(tokenizer.ASC):
		case p.cur.consumeKeyword(tokenizer.DESC):
			col.SemanticFlags |= ast.FlagDesc
		}
		cols.AddChild(col)
		if !p.cur.consumeDelim(tokenizer.COMMA) {
			break
		}
	}
	if !p.cur.consumeDelim(tokenizer.CPAREN) {
		return nil, p.errorf(ErrUnbalancedParens, "expected ')' to close index column list")
	}
	p.parenDepth--
	n.AddChild(cols)

	if p.cur.consumeKeyword(tokenizer.WHERE) {
		where := p.newNode(ast.KindWhereClause)
		cond, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		where.AddChild(cond)
		n.AddChild(where)
	}

	return n, nil
}

func (p *Parser) parseCreateView(flags ast.Flags) (*ast.Node, error) {
	n := p.newNode(ast.KindCreateViewStmt)
	n.Flags |= flags

	name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	n.AddChild(name)

	if p.cur.isDelim(tokenizer.OPAREN) {
		cols, err := p.parseColumnNameList()
		if err != nil {
			return nil, err
		}
		n.AddChild(cols)
	}

	if !p.cur.consumeKeyword(tokenizer.AS) {
		return nil, p.errorf(ErrUnexpectedToken, "expected AS in CREATE VIEW")
	}
	body, err := p.parseSelectStatement()
	if err != nil {
		return nil, err
	}
	n.AddChild(body)
	return n, nil
}

// parseCreateTrigger parses "CREATE TRIGGER name {BEFORE|AFTER|INSTEAD
// OF} event [OR event ...] ON table [FOR EACH {ROW|STATEMENT}] [WHEN (cond)]
// body_statement".
func (p *Parser) parseCreateTrigger() (*ast.Node, error) {
	n := p.newNode(ast.KindCreateTriggerStmt)
	if !p.cur.isIdentLike() {
		return nil, p.errorf(ErrUnexpectedToken, "expected trigger name")
	}
	n.Primary = p.factory.CopyString(p.cur.current().Lexeme)
	p.cur.advance()

	switch {
	case p.cur.consumeKeyword(tokenizer.BEFORE):
		n.Secondary = "BEFORE"
	case p.cur.consumeKeyword(tokenizer.AFTER):
		n.Secondary = "AFTER"
	case p.cur.consumeKeyword(tokenizer.INSTEAD):
		if !p.cur.consumeKeyword(tokenizer.OF) {
			return nil, p.errorf(ErrUnexpectedToken, "expected OF after INSTEAD")
		}
		n.Secondary = "INSTEAD OF"
	default:
		return nil, p.errorf(ErrMissingClause, "expected BEFORE, AFTER, or INSTEAD OF in CREATE TRIGGER")
	}

	events := p.newNode(ast.KindList)
	for {
		switch {
		case p.cur.consumeKeyword(tokenizer.INSERT):
			ev := p.newNode(ast.KindIdentifier)
			ev.Primary = "INSERT"
			events.AddChild(ev)
		case p.cur.consumeKeyword(tokenizer.UPDATE):
			ev := p.newNode(ast.KindIdentifier)
			ev.Primary = "UPDATE"
			events.AddChild(ev)
		case p.cur.consumeKeyword(tokenizer.DELETE):
			ev := p.newNode(ast.KindIdentifier)
			ev.Primary = "DELETE"
			events.AddChild(ev)
		default:
			return nil, p.errorf(ErrMissingClause, "expected INSERT, UPDATE, or DELETE in CREATE TRIGGER")
		}
		if !p.cur.consumeKeyword(tokenizer.OR) {
			break
		}
	}
	n.AddChild(events)

	if !p.cur.consumeKeyword(tokenizer.ON) {
		return nil, p.errorf(ErrUnexpectedToken, "expected ON in CREATE TRIGGER")
	}
	table, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	n.AddChild(table)

	if p.cur.consumeKeyword(tokenizer.FOR) {
		p.cur.consumeKeyword(tokenizer.EACH)
		switch {
		case p.cur.consumeKeyword(tokenizer.ROW):
		case p.cur.consumeKeyword(tokenizer.STATEMENT):
		default:
			return nil, p.errorf(ErrUnexpectedToken, "expected ROW or STATEMENT after FOR EACH")
		}
	}

	if p.cur.consumeKeyword(tokenizer.WHEN) {
		if !p.cur.consumeDelim(tokenizer.OPAREN) {
			return nil, p.errorf(ErrUnexpectedToken, "expected '(' after WHEN")
		}
		p.parenDepth++
		cond, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		if !p.cur.consumeDelim(tokenizer.CPAREN) {
			return nil, p.errorf(ErrUnbalancedParens, "expected ')' to close WHEN condition")
		}
		p.parenDepth--
		where := p.newNode(ast.KindWhereClause)
		where.AddChild(cond)
		n.AddChild(where)
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	n.AddChild(body)
	return n, nil
}

func (p *Parser) parseCreateSchema(flags ast.Flags) (*ast.Node, error) {
	n := p.newNode(ast.KindCreateSchemaStmt)
	n.Flags |= flags
	if p.parseIfNotExists() {
		n.Flags |= ast.FlagIfNotExists
	}
	name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	n.AddChild(name)
	return n, nil
}
