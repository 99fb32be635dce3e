package parser

import (
	"strconv"

	"github.com/kynessa/sqlfront/ast"
	"github.com/kynessa/sqlfront/tokenizer"
)

// ParseScript splits sql into `;`-separated statements using the same
// tokenizer the single-statement path uses (so semicolons inside string
// literals or comments never cause a false split) and parses each in
// turn. On the first statement-level error it stops and returns the
// roots parsed so far alongside an error wrapping ErrScriptInterrupted,
// per spec.md §7/§8: the script driver's only recovery is re-syncing to
// the next `;` boundary, and it does not attempt that recovery itself —
// the caller decides whether to resume past the failing statement.
func (p *Parser) ParseScript(sql string) ([]*ast.Node, error) {
	p.resetPerParseState()

	stream, err := tokenizer.NewStream(sql)
	if err != nil {
		return nil, newParseError(ErrUnexpectedToken, tokenizer.Position{Line: 1, Column: 1}, err.Error(), "")
	}
	p.cur = newCursor(stream)
	p.cur.skipTrivia()

	if p.cur.atEnd() {
		return nil, newParseError(ErrEmptyInput, p.cur.position(), "no statement found", "")
	}

	var roots []*ast.Node
	for {
		p.cur.skipTrivia()
		p.cur.consumeDelim(tokenizer.SEMI)
		p.cur.skipTrivia()
		if p.cur.atEnd() {
			break
		}

		p.depth = 0
		p.depthExceeded = false
		root, perr := p.parseStatement()
		if perr == nil && p.depthExceeded {
			perr = newParseError(ErrDepthExceeded, p.cur.position(), "maximum recursion depth exceeded", "")
		}
		if perr == nil {
			perr = p.validate(root)
		}
		if perr != nil {
			return roots, newParseError(ErrScriptInterrupted, p.cur.position(),
				"statement "+strconv.Itoa(len(roots)+1)+" failed: "+perr.Error(), p.contextSlice())
		}

		p.cur.skipTrivia()
		if !p.cur.atEnd() && !p.cur.isDelim(tokenizer.SEMI) {
			return roots, newParseError(ErrScriptInterrupted, p.cur.position(),
				"statement "+strconv.Itoa(len(roots)+1)+" has unexpected trailing input", p.contextSlice())
		}

		roots = append(roots, root)
	}
	return roots, nil
}
