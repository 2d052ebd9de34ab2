package lexer

import (
	"github.com/agentable/json5/source"
)

// EscapeSequence is the sum of escape forms permitted after a backslash
// inside string literals and, for the unicode form, identifiers.
type EscapeSequence interface {
	source.Spanned
	// Cooked returns the character the escape denotes. For
	// [UnicodeEscape] this is a UTF-16 code unit and may be one half of
	// a surrogate pair.
	Cooked() rune
	escapeSequence()
}

func peekEscapeSequence(cur *source.Cursor) bool {
	return peekSingleEscape(cur) ||
		peekNonEscape(cur) ||
		peekNullEscape(cur) ||
		peekHexEscape(cur) ||
		peekUnicodeEscape(cur)
}

func lexEscapeSequence(cur *source.Cursor) (EscapeSequence, bool, error) {
	return first(cur,
		asEscape(lexSingleEscape),
		asEscape(lexNonEscape),
		asEscape(lexNullEscape),
		asEscape(lexHexEscape),
		asEscape(lexUnicodeEscape),
	)
}

// asEscape adapts a concrete escape lexer to the EscapeSequence sum.
func asEscape[T EscapeSequence](lex lexFunc[T]) lexFunc[EscapeSequence] {
	return func(cur *source.Cursor) (EscapeSequence, bool, error) {
		v, ok, err := lex(cur)
		if !ok || err != nil {
			return nil, false, err
		}
		return v, true, nil
	}
}

// SingleEscape is one of the single escape characters ' " \ b f n r t v,
// consumed verbatim with its raw character retained.
type SingleEscape struct {
	span source.Span
	raw  rune
}

func (e SingleEscape) Span() source.Span { return e.span }

// Raw returns the escape character as written in the source.
func (e SingleEscape) Raw() rune { return e.raw }

// Cooked returns the control or quote character the escape denotes.
func (e SingleEscape) Cooked() rune {
	switch e.raw {
	case 'b':
		return '\b'
	case 'f':
		return '\f'
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	case 'v':
		return '\v'
	default: // ' " \ denote themselves
		return e.raw
	}
}

func (SingleEscape) escapeSequence() {}

func isSingleEscapeChar(r rune) bool {
	switch r {
	case '\'', '"', '\\', 'b', 'f', 'n', 'r', 't', 'v':
		return true
	}
	return false
}

// isEscapeChar reports whether r has reserved meaning after a backslash
// and therefore cannot lex as a non-escape character.
func isEscapeChar(r rune) bool {
	return isSingleEscapeChar(r) || isDigit(r) || r == 'x' || r == 'u'
}

func peekSingleEscape(cur *source.Cursor) bool {
	return cur.Upcoming(isSingleEscapeChar)
}

func lexSingleEscape(cur *source.Cursor) (SingleEscape, bool, error) {
	if !peekSingleEscape(cur) {
		return SingleEscape{}, false, nil
	}
	loc, raw, _ := cur.Take()
	return SingleEscape{span: source.Single(loc), raw: raw}, true, nil
}

// NonEscape is any single character that is neither a line terminator nor
// an escape character; it denotes itself.
type NonEscape struct {
	span source.Span
	raw  rune
}

func (e NonEscape) Span() source.Span { return e.span }

// Raw returns the character as written in the source.
func (e NonEscape) Raw() rune { return e.raw }

// Cooked returns the character itself.
func (e NonEscape) Cooked() rune { return e.raw }

func (NonEscape) escapeSequence() {}

func peekNonEscape(cur *source.Cursor) bool {
	return cur.Upcoming(func(r rune) bool {
		return !isLineTerminator(r) && !isEscapeChar(r)
	})
}

func lexNonEscape(cur *source.Cursor) (NonEscape, bool, error) {
	if !peekNonEscape(cur) {
		return NonEscape{}, false, nil
	}
	loc, raw, _ := cur.Take()
	return NonEscape{span: source.Single(loc), raw: raw}, true, nil
}

// NullEscape is the digit 0 denoting U+0000, valid only when not followed
// by another digit. The one-character negative lookahead keeps
// legacy-octal-looking sequences from lexing silently.
type NullEscape struct {
	span source.Span
}

func (e NullEscape) Span() source.Span { return e.span }

// Cooked returns U+0000.
func (NullEscape) Cooked() rune { return 0 }

func (NullEscape) escapeSequence() {}

func peekNullEscape(cur *source.Cursor) bool {
	if !peekVerbatim(cur, "0") {
		return false
	}
	next, ok := cur.PeekAt(1)
	return !ok || !isDigit(next)
}

func lexNullEscape(cur *source.Cursor) (NullEscape, bool, error) {
	if !peekNullEscape(cur) {
		return NullEscape{}, false, nil
	}
	loc, _, _ := cur.Take()
	return NullEscape{span: source.Single(loc)}, true, nil
}

// HexEscape is the literal x followed by exactly two hexadecimal digits.
type HexEscape struct {
	marker Verbatim
	digits Exactly[HexDigit]
}

// Span combines the marker's span with the digit sequence's span.
func (e HexEscape) Span() source.Span {
	return source.Combine(e.marker.Span(), e.digits.Span())
}

// Cooked returns the code point the two digits encode.
func (e HexEscape) Cooked() rune { return hexValue(e.digits) }

func (HexEscape) escapeSequence() {}

func peekHexEscape(cur *source.Cursor) bool {
	return peekVerbatim(cur, "x")
}

func lexHexEscape(cur *source.Cursor) (HexEscape, bool, error) {
	marker, ok, _ := lexVerbatim(cur, "x")
	if !ok {
		return HexEscape{}, false, nil
	}
	digits, _, err := lexExactly(cur, 2, lexHexDigit, ErrEscapeDigits)
	if err != nil {
		return HexEscape{}, false, err
	}
	return HexEscape{marker: marker, digits: digits}, true, nil
}

// UnicodeEscape is the literal u followed by exactly four hexadecimal
// digits. Its cooked value is a UTF-16 code unit; surrogate halves pair up
// at the string level.
type UnicodeEscape struct {
	marker Verbatim
	digits Exactly[HexDigit]
}

// Span combines the marker's span with the digit sequence's span.
func (e UnicodeEscape) Span() source.Span {
	return source.Combine(e.marker.Span(), e.digits.Span())
}

// Cooked returns the UTF-16 code unit the four digits encode.
func (e UnicodeEscape) Cooked() rune { return hexValue(e.digits) }

func (UnicodeEscape) escapeSequence() {}

func peekUnicodeEscape(cur *source.Cursor) bool {
	return peekVerbatim(cur, "u")
}

func lexUnicodeEscape(cur *source.Cursor) (UnicodeEscape, bool, error) {
	marker, ok, _ := lexVerbatim(cur, "u")
	if !ok {
		return UnicodeEscape{}, false, nil
	}
	digits, _, err := lexExactly(cur, 4, lexHexDigit, ErrEscapeDigits)
	if err != nil {
		return UnicodeEscape{}, false, err
	}
	return UnicodeEscape{marker: marker, digits: digits}, true, nil
}

// hexValue folds a digit sequence into the code point it encodes.
func hexValue(digits Exactly[HexDigit]) rune {
	var v rune
	for _, d := range digits.Items() {
		v = v*16 + d.Value()
	}
	return v
}
