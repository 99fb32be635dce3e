package tokenizer

import "iter"

// Stream is a finite, random-access sequence of tokens. It is the
// concrete object the parser's token cursor wraps; Stream itself has no
// notion of grammar.
type Stream struct {
	tokens []Token
}

// NewStream lexes input and returns its token stream.
func NewStream(input string) (*Stream, error) {
	tokens, err := Scan(input)
	if err != nil {
		return nil, err
	}
	return &Stream{tokens: tokens}, nil
}

// Len returns the number of tokens, including the trailing EOF.
func (s *Stream) Len() int { return len(s.tokens) }

// At returns the token at i, or the EOF token if i is out of range.
func (s *Stream) At(i int) Token {
	if i < 0 || i >= len(s.tokens) {
		return s.tokens[len(s.tokens)-1]
	}
	return s.tokens[i]
}

// Seq yields (index, token) pairs in order, in the Go 1.23+ iterator
// style; used by debug tooling that wants to walk the whole stream.
func (s *Stream) Seq() iter.Seq2[int, Token] {
	return func(yield func(int, Token) bool) {
		for i, t := range s.tokens {
			if !yield(i, t) {
				return
			}
		}
	}
}
