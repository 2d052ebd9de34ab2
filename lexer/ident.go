package lexer

import (
	"strings"
	"unicode"

	"github.com/agentable/json5/source"
)

// Identifier is an ECMAScript 5.1 IdentifierName (§7.6): a Unicode letter,
// $, _, or \uXXXX escape to start, then letters, digits, combining marks,
// connector punctuation, ZWNJ/ZWJ or further escapes.
type Identifier struct {
	span source.Span
	name string
}

func (i Identifier) Span() source.Span { return i.span }

// Name returns the identifier with unicode escapes decoded.
func (i Identifier) Name() string { return i.name }

func (Identifier) inputElement() {}
func (Identifier) token()        {}

// isIdentStart covers the character-level start rules: the Unicode letter
// categories plus Nl, and the literal $ and _. Escapes are handled by
// peekIdentifier.
func isIdentStart(r rune) bool {
	return r == '$' || r == '_' || unicode.In(r, unicode.L, unicode.Nl)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) ||
		unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc) ||
		r == '\u200c' || r == '\u200d' // ZWNJ, ZWJ
}

// peekIdentEscape reports whether the cursor sits on a backslash beginning
// a complete, valid \uXXXX escape. A backslash alone is not sufficient.
// Validation runs on a fork, so the caller's cursor never moves.
func peekIdentEscape(cur *source.Cursor) bool {
	if !peekVerbatim(cur, "\\") {
		return false
	}
	fork := cur.Fork()
	fork.Take() // backslash
	_, ok, err := lexUnicodeEscape(fork)
	return ok && err == nil
}

func peekIdentifier(cur *source.Cursor) bool {
	r, ok := cur.Peek()
	if !ok {
		return false
	}
	if isIdentStart(r) {
		return true
	}
	return peekIdentEscape(cur)
}

// peekIdentContinue is the continuation test: any start character, the
// part-only categories, or another valid escape.
func peekIdentContinue(cur *source.Cursor) bool {
	if cur.Upcoming(isIdentPart) {
		return true
	}
	return peekIdentEscape(cur)
}

// takeIdentChar consumes one identifier character, expanding a \uXXXX
// escape when present. It returns the location of the last character
// consumed and the decoded character.
func takeIdentChar(cur *source.Cursor) (source.Loc, rune, error) {
	if r, _ := cur.Peek(); r != '\\' {
		loc, raw, _ := cur.Take()
		return loc, raw, nil
	}
	at := cur.Loc()
	fork := cur.Fork()
	fork.Take() // backslash
	esc, ok, err := lexUnicodeEscape(fork)
	if !ok || err != nil {
		return 0, 0, errAt(ErrIdentifierEscape, at)
	}
	cur.Commit(fork)
	return esc.Span().End(), esc.Cooked(), nil
}

func lexIdentifier(cur *source.Cursor) (Identifier, bool, error) {
	if !peekIdentifier(cur) {
		return Identifier{}, false, nil
	}

	var name strings.Builder
	start := cur.Loc()
	end, r, err := takeIdentChar(cur)
	if err != nil {
		return Identifier{}, false, err
	}
	name.WriteRune(r)

	// A continuation backslash with an invalid escape ends the
	// identifier rather than poisoning it; the backslash is left for
	// the next lexer to reject.
	for peekIdentContinue(cur) {
		if end, r, err = takeIdentChar(cur); err != nil {
			return Identifier{}, false, err
		}
		name.WriteRune(r)
	}

	return Identifier{span: rangeSpan(start, end), name: name.String()}, true, nil
}
