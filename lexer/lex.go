// Package lexer implements the lexical grammar of JSON5, following the
// ECMAScript 5.1 rules for identifiers, escape sequences, line terminators
// and comments.
//
// Every token type follows one two-operation contract: a peek function
// reports, without consuming input, whether lexing would succeed, and a
// lex function attempts the match. Lex results are three-way:
//
//	value, true, nil   -- matched; the cursor advanced exactly past the text
//	zero, false, nil   -- no match; the cursor is untouched
//	zero, false, err   -- malformed; the token's leading signature was
//	                     recognized but the remainder violates the grammar
//
// After a malformed result the cursor position is unspecified and the
// current pass must be abandoned. A malformed result is never downgraded
// to a non-match: only a non-match justifies trying another alternative.
//
// Use [Scanner] to drive the lexer over a whole input; [LexInputElement]
// and [LexToken] expose the underlying dispatchers.
package lexer

import (
	"github.com/agentable/json5/source"
)

// lexFunc is the consuming half of the peek/lex contract.
type lexFunc[T any] func(*source.Cursor) (T, bool, error)

// first tries each alternative in order, returning the first match. A
// malformed result short-circuits immediately: a partially recognized
// token must not silently fall through to a different interpretation.
func first[T any](cur *source.Cursor, alts ...lexFunc[T]) (T, bool, error) {
	var zero T
	for _, alt := range alts {
		v, ok, err := alt(cur)
		if err != nil {
			return zero, false, err
		}
		if ok {
			return v, true, nil
		}
	}
	return zero, false, nil
}

// Verbatim is a token that matches one fixed literal character sequence,
// case-sensitively, one code point at a time.
type Verbatim struct {
	span source.Span
	text string
}

// Span returns the combined span of the consumed characters.
func (v Verbatim) Span() source.Span { return v.span }

// Text returns the matched literal.
func (v Verbatim) Text() string { return v.text }

// peekLit reports whether the characters starting n positions ahead of the
// cursor equal lit exactly.
func peekLit(cur *source.Cursor, n int, lit string) bool {
	for i, want := range []rune(lit) {
		got, ok := cur.PeekAt(n + i)
		if !ok || got != want {
			return false
		}
	}
	return true
}

func peekVerbatim(cur *source.Cursor, lit string) bool {
	return peekLit(cur, 0, lit)
}

// lexVerbatim consumes exactly lit, spanning the consumed positions.
func lexVerbatim(cur *source.Cursor, lit string) (Verbatim, bool, error) {
	if !peekVerbatim(cur, lit) {
		return Verbatim{}, false, nil
	}
	start, _, _ := cur.Take()
	end := start
	for range len([]rune(lit)) - 1 {
		end, _, _ = cur.Take()
	}
	return Verbatim{span: rangeSpan(start, end), text: lit}, true, nil
}

// Exactly is an ordered run of exactly N matches of one token type, spanned
// by the combination of its items' spans.
type Exactly[T source.Spanned] struct {
	items []T
}

// Items returns the matched values in source order.
func (e Exactly[T]) Items() []T { return e.items }

// Span combines the item spans in order.
func (e Exactly[T]) Span() source.Span {
	spans := make([]source.Span, len(e.items))
	for i, item := range e.items {
		spans[i] = item.Span()
	}
	return source.Combine(spans...)
}

// lexExactly lexes T exactly n times. Fewer than n matches is malformed,
// not a non-match: reaching this production means the caller has already
// committed to it. The malformed error wraps short.
func lexExactly[T source.Spanned](cur *source.Cursor, n int, lex lexFunc[T], short error) (Exactly[T], bool, error) {
	items := make([]T, 0, n)
	for range n {
		v, ok, err := lex(cur)
		if err != nil {
			return Exactly[T]{}, false, err
		}
		if !ok {
			return Exactly[T]{}, false, errAt(short, cur.Loc())
		}
		items = append(items, v)
	}
	return Exactly[T]{items: items}, true, nil
}

// rangeSpan builds the span from start through end. Monotonic cursor
// locations guarantee validity.
func rangeSpan(start, end source.Loc) source.Span {
	sp, _ := source.Range(start, end)
	return sp
}
