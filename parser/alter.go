package parser

import (
	"github.com/kynessa/sqlfront/ast"
	"github.com/kynessa/sqlfront/tokenizer"
)

// parseAlterTableStatement parses "ALTER TABLE [IF EXISTS] name action",
// where action is one of ADD [COLUMN] coldef, ADD constraint, DROP
// COLUMN name [CASCADE|RESTRICT], ALTER COLUMN name TYPE type, RENAME
// [COLUMN old TO new | TO newname].
func (p *Parser) parseAlterTableStatement() (*ast.Node, error) {
	p.cur.advance() // ALTER
	if !p.cur.consumeKeyword(tokenizer.TABLE) {
		return nil, p.errorf(ErrUnexpectedToken, "expected TABLE after ALTER")
	}

	n := p.newNode(ast.KindAlterTableStmt)
	if p.cur.isKeyword(tokenizer.IF) {
		p.cur.advance()
		if !p.cur.consumeKeyword(tokenizer.EXISTS) {
			return nil, p.errorf(ErrUnexpectedToken, "expected EXISTS after IF")
		}
		n.Flags |= ast.FlagIfExists
	}

	name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	n.AddChild(name)

	action, err := p.parseAlterAction()
	if err != nil {
		return nil, err
	}
	n.AddChild(action)
	return n, nil
}

func (p *Parser) parseAlterAction() (*ast.Node, error) {
	n := p.newNode(ast.KindAlterAction)

	switch {
	case p.cur.consumeKeyword(tokenizer.ADD):
		p.cur.consumeKeyword(tokenizer.COLUMN)
		if p.cur.matchesAny(tokenizer.PRIMARY, tokenizer.UNIQUE, tokenizer.CHECK, tokenizer.FOREIGN, tokenizer.CONSTRAINT) {
			n.Primary = "ADD CONSTRAINT"
			c, err := p.parseTableConstraint()
			if err != nil {
				return nil, err
			}
			n.AddChild(c)
			return n, nil
		}
		n.Primary = "ADD COLUMN"
		col, err := p.parseColumnDef()
		if err != nil {
			return nil, err
		}
		n.AddChild(col)
		return n, nil

	case p.cur.consumeKeyword(tokenizer.DROP):
		p.cur.consumeKeyword(tokenizer.COLUMN)
		n.Primary = "DROP COLUMN"
		if !p.cur.isIdentLike() {
			return nil, p.errorf(ErrUnexpectedToken, "expected column name after DROP COLUMN")
		}
		col := p.newNode(ast.KindIdentifier)
		col.Primary = p.factory.CopyString(p.cur.current().Lexeme)
		p.cur.advance()
		n.AddChild(col)
		switch {
		case p.cur.consumeKeyword(tokenizer.CASCADE):
			n.Flags |= ast.FlagCascade
		case p.cur.consumeKeyword(tokenizer.RESTRICT):
			n.Flags |= ast.FlagRestrict
		}
		return n, nil

	case p.cur.isKeyword(tokenizer.ALTER):
		p.cur.advance()
		p.cur.consumeKeyword(tokenizer.COLUMN)
		n.Primary = "ALTER COLUMN"
		if !p.cur.isIdentLike() {
			return nil, p.errorf(ErrUnexpectedToken, "expected column name after ALTER COLUMN")
		}
		col := p.newNode(ast.KindIdentifier)
		col.Primary = p.factory.CopyString(p.cur.current().Lexeme)
		p.cur.advance()
		n.AddChild(col)
		if !p.cur.consumeKeyword(tokenizer.TYPE) {
			return nil, p.errorf(ErrMissingClause, "expected TYPE in ALTER COLUMN")
		}
		typ, err := p.parseDataType()
		if err != nil {
			return nil, err
		}
		n.AddChild(typ)
		return n, nil

	case p.cur.consumeKeyword(tokenizer.RENAME):
		if p.cur.consumeKeyword(tokenizer.COLUMN) {
			n.Primary = "RENAME COLUMN"
			if !p.cur.isIdentLike() {
				return nil, p.errorf(ErrUnexpectedToken, "expected column name")
			}
			oldName := p.newNode(ast.KindIdentifier)
			oldName.Primary = p.factory.CopyString(p.cur.current().Lexeme)
			p.cur.advance()
			if !p.cur.consumeKeyword(tokenizer.TO) {
				return nil, p.errorf(ErrUnexpectedToken, "expected TO in RENAME COLUMN")
			}
			if !p.cur.isIdentLike() {
				return nil, p.errorf(ErrUnexpectedToken, "expected new column name")
			}
			newName := p.newNode(ast.KindIdentifier)
			newName.Primary = p.factory.CopyString(p.cur.current().Lexeme)
			p.cur.advance()
			n.AddChild(oldName)
			n.AddChild(newName)
			return n, nil
		}
		if !p.cur.consumeKeyword(tokenizer.TO) {
			return nil, p.errorf(ErrUnexpectedToken, "expected TO or COLUMN after RENAME")
		}
		n.Primary = "RENAME TO"
		if !p.cur.isIdentLike() {
			return nil, p.errorf(ErrUnexpectedToken, "expected new table name")
		}
		newName := p.newNode(ast.KindIdentifier)
		newName.Primary = p.factory.CopyString(p.cur.current().Lexeme)
		p.cur.advance()
		n.AddChild(newName)
		return n, nil
	}

	return nil, p.errorf(ErrUnexpectedToken, "expected ADD, DROP, ALTER, or RENAME in ALTER TABLE")
}
