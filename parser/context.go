package parser

import "github.com/kynessa/sqlfront/ast"

// contextStack is an append-only-within-one-parse sequence of syntactic
// role tags. It exists purely so identifier nodes can be annotated with
// the clause they were parsed inside (e.g. WHERE vs GROUP BY) for a
// downstream semantic analyzer; the parser itself must never branch on
// it (spec.md §9).
type contextStack struct {
	stack []ast.ContextHint
}

func (c *contextStack) push(hint ast.ContextHint) { c.stack = append(c.stack, hint) }

func (c *contextStack) pop() {
	if len(c.stack) > 0 {
		c.stack = c.stack[:len(c.stack)-1]
	}
}

func (c *contextStack) current() ast.ContextHint {
	if len(c.stack) == 0 {
		return ast.ContextUnknown
	}
	return c.stack[len(c.stack)-1]
}

// withContext pushes hint, runs fn, and pops unconditionally.
func (p *Parser) withContext(hint ast.ContextHint, fn func()) {
	p.ctx.push(hint)
	defer p.ctx.pop()
	fn()
}
