package lexer

import (
	"fmt"
	"iter"

	"github.com/agentable/json5/source"
)

// PunctKind identifies a punctuator character.
type PunctKind int8

const (
	OpenBrace    PunctKind = iota // {
	CloseBrace                    // }
	OpenBracket                   // [
	CloseBracket                  // ]
	Colon                         // :
	Comma                         // ,

	// Minus, Plus and Dot appear inside numeric literals; they are not
	// dispatched as top-level punctuators.
	Minus // -
	Plus  // +
	Dot   // .
)

var punctNames = [...]string{
	OpenBrace:    "{",
	CloseBrace:   "}",
	OpenBracket:  "[",
	CloseBracket: "]",
	Colon:        ":",
	Comma:        ",",
	Minus:        "-",
	Plus:         "+",
	Dot:          ".",
}

// String returns the punctuator's literal text.
func (k PunctKind) String() string {
	if int(k) < len(punctNames) {
		return punctNames[k]
	}
	return fmt.Sprintf("PunctKind(%d)", k)
}

// Punct is a single punctuator token.
type Punct struct {
	kind PunctKind
	span source.Span
}

func (p Punct) Span() source.Span { return p.span }

// Kind returns which punctuator this is.
func (p Punct) Kind() PunctKind { return p.kind }

func (Punct) inputElement() {}
func (Punct) token()        {}

// punctKinds maps the top-level punctuator characters to their kinds.
var punctKinds = map[rune]PunctKind{
	'{': OpenBrace,
	'}': CloseBrace,
	'[': OpenBracket,
	']': CloseBracket,
	':': Colon,
	',': Comma,
}

func peekPunct(cur *source.Cursor) bool {
	return cur.Upcoming(func(r rune) bool {
		_, ok := punctKinds[r]
		return ok
	})
}

func lexPunct(cur *source.Cursor) (Punct, bool, error) {
	r, ok := cur.Peek()
	if !ok {
		return Punct{}, false, nil
	}
	kind, ok := punctKinds[r]
	if !ok {
		return Punct{}, false, nil
	}
	loc, _, _ := cur.Take()
	return Punct{kind: kind, span: source.Single(loc)}, true, nil
}

// InputElement is any element of the lexical stream: a line terminator,
// whitespace, a comment, or a token. The set of implementations is closed;
// consumers dispatch with exhaustive type switches.
type InputElement interface {
	source.Spanned
	inputElement()
}

// Token is a non-trivia input element: an identifier, punctuator, string
// or number.
type Token interface {
	InputElement
	token()
}

// LexToken attempts identifier, punctuator, string and number lexing, in
// that priority order. There is deliberately no matching cheap peek: it
// would restate all four sub-peeks, so callers drive recognition through
// LexToken and treat a non-match as the peek signal.
func LexToken(cur *source.Cursor) (Token, bool, error) {
	return first(cur,
		asToken(lexIdentifier),
		asToken(lexPunct),
		asToken(lexString),
		asToken(lexNumber),
	)
}

// LexInputElement attempts line terminator, whitespace, comment and token
// lexing, in that priority order. A non-match from all four means no
// recognizable input remains at the cursor.
func LexInputElement(cur *source.Cursor) (InputElement, bool, error) {
	return first(cur,
		asElement(lexLineTerminator),
		asElement(lexWhiteSpace),
		asElement(lexComment),
		asElement(LexToken),
	)
}

// asToken adapts a concrete token lexer to the Token sum.
func asToken[T Token](lex lexFunc[T]) lexFunc[Token] {
	return func(cur *source.Cursor) (Token, bool, error) {
		v, ok, err := lex(cur)
		if !ok || err != nil {
			return nil, false, err
		}
		return v, true, nil
	}
}

// asElement adapts a concrete element lexer to the InputElement sum.
func asElement[T InputElement](lex lexFunc[T]) lexFunc[InputElement] {
	return func(cur *source.Cursor) (InputElement, bool, error) {
		v, ok, err := lex(cur)
		if !ok || err != nil {
			return nil, false, err
		}
		return v, true, nil
	}
}

// Scanner is a pull-based source of input elements over one file. It
// yields trivia like any other element; downstream grammars filter what
// they do not need. After an error or end of input the scanner halts:
// further calls repeat the terminal state.
type Scanner struct {
	cur  *source.Cursor
	err  error
	done bool
}

// NewScanner creates a Scanner over f.
func NewScanner(f *source.File) *Scanner {
	return &Scanner{cur: f.Cursor()}
}

// Next returns the next input element. It reports false at end of input.
// A malformed token or an unrecognized character is returned as an error
// carrying the offending position; lexing cannot resume past it.
func (s *Scanner) Next() (InputElement, bool, error) {
	if s.done || s.err != nil {
		return nil, false, s.err
	}

	el, ok, err := LexInputElement(s.cur)
	switch {
	case err != nil:
		s.err = err
		return nil, false, err
	case ok:
		return el, true, nil
	}

	if r, ok := s.cur.Peek(); ok {
		s.err = fmt.Errorf("%w %q at position %d", ErrUnexpectedChar, r, s.cur.Loc())
		return nil, false, s.err
	}
	s.done = true
	return nil, false, nil
}

// All returns an iterator over the remaining input elements. Iteration
// stops after end of input or the first error.
func (s *Scanner) All() iter.Seq2[InputElement, error] {
	return func(yield func(InputElement, error) bool) {
		for {
			el, ok, err := s.Next()
			if err != nil {
				yield(nil, err)
				return
			}
			if !ok {
				return
			}
			if !yield(el, nil) {
				return
			}
		}
	}
}
