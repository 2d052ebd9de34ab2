package lexer

import (
	"strings"
	"unicode/utf16"

	"github.com/agentable/json5/source"
)

// String is a single- or double-quoted JSON5 string literal. The decoded
// content, with escape sequences resolved and line continuations removed,
// is retained alongside the span.
type String struct {
	span  source.Span
	value string
}

func (s String) Span() source.Span { return s.span }

// Value returns the decoded string content.
func (s String) Value() string { return s.value }

func (String) inputElement() {}
func (String) token()        {}

func isQuote(r rune) bool {
	return r == '"' || r == '\''
}

func peekString(cur *source.Cursor) bool {
	return cur.Upcoming(isQuote)
}

func lexString(cur *source.Cursor) (String, bool, error) {
	quote, ok := cur.Peek()
	if !ok || !isQuote(quote) {
		return String{}, false, nil
	}
	start, _, _ := cur.Take()

	var buf strings.Builder
	for {
		r, ok := cur.Peek()
		switch {
		case !ok:
			return String{}, false, errAt(ErrUnterminatedString, start)
		case r == quote:
			end, _, _ := cur.Take()
			return String{span: rangeSpan(start, end), value: buf.String()}, true, nil
		case r == '\\':
			if err := lexStringEscape(cur, &buf); err != nil {
				return String{}, false, err
			}
		case r == '\n' || r == '\r':
			// LS and PS are legal unescaped in JSON5 strings; LF and
			// CR are not.
			return String{}, false, errAt(ErrUnterminatedString, cur.Loc())
		default:
			cur.Take()
			buf.WriteRune(r)
		}
	}
}

// lexStringEscape consumes a backslash and whatever follows it. A line
// continuation contributes nothing to the value; any other escape
// contributes its cooked character, with adjacent \uXXXX surrogate halves
// combined into one code point.
func lexStringEscape(cur *source.Cursor, buf *strings.Builder) error {
	at := cur.Loc()
	cur.Take() // backslash

	if peekLineTerminatorSeq(cur) {
		_, _, err := lexLineTerminatorSeq(cur)
		return err
	}

	esc, ok, err := lexEscapeSequence(cur)
	if err != nil {
		return err
	}
	if !ok {
		// Nothing lexes here: end of input, or a digit (the null
		// escape's lookahead failed, and digits are excluded from
		// non-escape characters).
		switch r, ok := cur.Peek(); {
		case !ok:
			return errAt(ErrUnterminatedString, at)
		case r == '0':
			return errAt(ErrLeadingZero, at)
		default:
			return errAt(ErrInvalidEscape, at)
		}
	}

	r := esc.Cooked()
	if _, isUnicode := esc.(UnicodeEscape); isUnicode && isHighSurrogate(r) {
		if low, ok := lexLowSurrogate(cur); ok {
			r = utf16.DecodeRune(r, low)
		}
	}
	buf.WriteRune(r)
	return nil
}

func isHighSurrogate(r rune) bool {
	return r >= 0xD800 && r <= 0xDBFF
}

func isLowSurrogate(r rune) bool {
	return r >= 0xDC00 && r <= 0xDFFF
}

// lexLowSurrogate speculatively consumes a following \uXXXX escape when it
// encodes a low surrogate. The cursor only advances when a pairable unit
// is found; a lone half is left to decode as the replacement character.
func lexLowSurrogate(cur *source.Cursor) (rune, bool) {
	if !peekVerbatim(cur, "\\") {
		return 0, false
	}
	fork := cur.Fork()
	fork.Take() // backslash
	esc, ok, err := lexUnicodeEscape(fork)
	if !ok || err != nil {
		return 0, false
	}
	low := esc.Cooked()
	if !isLowSurrogate(low) {
		return 0, false
	}
	cur.Commit(fork)
	return low, true
}
