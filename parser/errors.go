package parser

import (
	"errors"
	"fmt"

	"github.com/kynessa/sqlfront/tokenizer"
)

// Sentinel errors — one per kind in the taxonomy of spec.md §7. ParseError
// holds one of these in its Kind field and returns it from Unwrap, so
// callers can match with errors.Is against the sentinel regardless of the
// message text.
var (
	ErrEmptyInput        = errors.New("empty input")
	ErrUnexpectedToken    = errors.New("unexpected token")
	ErrUnbalancedParens   = errors.New("unbalanced parentheses")
	ErrDepthExceeded      = errors.New("recursion depth exceeded")
	ErrMissingClause      = errors.New("missing required clause")
	ErrMalformedLiteral   = errors.New("malformed literal")
	ErrValidationFailed   = errors.New("validation failed")
	ErrScriptInterrupted  = errors.New("script interrupted")
)

// ParseError is the concrete error type returned by Parse, ParseScript,
// and the validator. It carries enough context for a caller to render a
// useful diagnostic without re-lexing the input.
type ParseError struct {
	Kind     error // one of the sentinels above
	Line     int
	Column   int
	Offset   int
	Message  string
	Context  string // a short source slice around the failure
}

func (e *ParseError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s at line %d, column %d: %s (near %q)",
			e.Kind, e.Line, e.Column, e.Message, e.Context)
	}
	return fmt.Sprintf("%s at line %d, column %d: %s", e.Kind, e.Line, e.Column, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Kind }

func newParseError(kind error, pos tokenizer.Position, msg, context string) *ParseError {
	return &ParseError{
		Kind:    kind,
		Line:    pos.Line,
		Column:  pos.Column,
		Offset:  pos.Offset,
		Message: msg,
		Context: context,
	}
}
