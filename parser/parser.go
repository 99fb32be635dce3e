// Package parser implements the SQL parsing engine: a recursive-descent
// statement/clause grammar fused with a Pratt-style expression parser,
// producing an arena-backed AST for a downstream semantic analyzer,
// planner, or rewriter. The parser is single-threaded and synchronous;
// a Parser instance is not safe for concurrent use, though independent
// instances may run in parallel (spec.md §5).
package parser

import (
	"fmt"
	"log/slog"

	"github.com/kynessa/sqlfront/ast"
	"github.com/kynessa/sqlfront/tokenizer"
)

// Parser converts SQL text into an AST. Create one with New and reuse it
// across parses by calling Reset between them.
type Parser struct {
	cfg     Config
	factory *ast.Factory
	log     *slog.Logger

	cur *cursor
	ctx contextStack

	depth         int
	depthExceeded bool
	parenDepth    int
}

// New creates a Parser with the given configuration. A nil logger is
// replaced with slog.Default(); it is only consulted when cfg.Mode is
// ModeDebug.
func New(cfg Config, log *slog.Logger) *Parser {
	if log == nil {
		log = slog.Default()
	}
	return &Parser{
		cfg:     cfg,
		factory: ast.NewFactory(),
		log:     log,
	}
}

// Config returns the parser's current configuration.
func (p *Parser) Config() Config { return p.cfg }

// SetConfig replaces the parser's configuration. It takes effect on the
// next Parse/ParseScript call.
func (p *Parser) SetConfig(cfg Config) { p.cfg = cfg }

// MemoryUsed reports bytes currently committed in the AST arena.
func (p *Parser) MemoryUsed() int { return p.factory.MemoryUsed() }

// NodeCount reports nodes allocated since the last Reset.
func (p *Parser) NodeCount() int { return p.factory.NodeCount() }

// Reset clears the arena and all per-parse counters, invalidating every
// AST previously returned by this Parser (spec.md §5).
func (p *Parser) Reset() {
	p.factory.Reset()
	p.cur = nil
	p.ctx = contextStack{}
	p.depth = 0
	p.depthExceeded = false
	p.parenDepth = 0
}

// Parse lexes and parses a single SQL statement, returning its AST root
// or a *ParseError.
func (p *Parser) Parse(sql string) (*ast.Node, error) {
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

	root, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if p.depthExceeded {
		return nil, newParseError(ErrDepthExceeded, p.cur.position(), "maximum recursion depth exceeded", "")
	}

	p.cur.skipTrivia()
	p.cur.consumeDelim(tokenizer.SEMI)
	p.cur.skipTrivia()
	if !p.cur.atEnd() {
		return nil, p.errorf(ErrUnexpectedToken, "unexpected trailing input after statement")
	}

	if err := p.validate(root); err != nil {
		return nil, err
	}
	return root, nil
}

// resetPerParseState clears counters that must not leak between Parse
// calls on the same Parser, without touching the arena (so callers who
// want to keep prior ASTs alive across Parse calls, but not across
// Reset, may do so).
func (p *Parser) resetPerParseState() {
	p.ctx = contextStack{}
	p.depth = 0
	p.depthExceeded = false
	p.parenDepth = 0
}

// errorf builds a *ParseError anchored at the current token, with a short
// surrounding-context slice for diagnostics.
func (p *Parser) errorf(kind error, format string, args ...any) *ParseError {
	msg := fmt.Sprintf(format, args...)
	return newParseError(kind, p.cur.position(), msg, p.contextSlice())
}

func (p *Parser) contextSlice() string {
	tok := p.cur.current()
	if tok.Type == tokenizer.EOF {
		return "<eof>"
	}
	return tok.Lexeme
}

func (p *Parser) traceDispatch(what string) {
	if p.cfg.Mode == ModeDebug {
		p.log.Debug("dispatch", "rule", what, "token", p.cur.current().String())
	}
}

// newNode allocates a node tagged with the current context hint.
func (p *Parser) newNode(kind ast.Kind) *ast.Node {
	n := p.factory.NewAt(kind, p.cur.position())
	n.Context = p.ctx.current()
	return n
}
