package lexer

import (
	"unicode"

	"github.com/agentable/json5/source"
)

// WhiteSpace is a maximal run of whitespace characters, per ECMAScript 5.1
// §7.2: tab, vertical tab, form feed, space, no-break space, or any
// character in the Unicode "separator, space" category.
type WhiteSpace struct {
	span source.Span
}

func (w WhiteSpace) Span() source.Span { return w.span }
func (WhiteSpace) inputElement()       {}

func isWhiteSpace(r rune) bool {
	switch r {
	case '\t', '\v', '\f', ' ', '\u00a0':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

func peekWhiteSpace(cur *source.Cursor) bool {
	return cur.Upcoming(isWhiteSpace)
}

func lexWhiteSpace(cur *source.Cursor) (WhiteSpace, bool, error) {
	if !peekWhiteSpace(cur) {
		return WhiteSpace{}, false, nil
	}
	start, _, _ := cur.Take()
	end := start
	for cur.Upcoming(isWhiteSpace) {
		end, _, _ = cur.Take()
	}
	return WhiteSpace{span: rangeSpan(start, end)}, true, nil
}

// LineTerminator is a single line terminator character, per ECMAScript 5.1
// §7.3: LF, CR, LS (U+2028) or PS (U+2029).
type LineTerminator struct {
	span source.Span
}

func (l LineTerminator) Span() source.Span { return l.span }
func (LineTerminator) inputElement()       {}

func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}

func peekLineTerminator(cur *source.Cursor) bool {
	return cur.Upcoming(isLineTerminator)
}

func lexLineTerminator(cur *source.Cursor) (LineTerminator, bool, error) {
	if !peekLineTerminator(cur) {
		return LineTerminator{}, false, nil
	}
	loc, _, _ := cur.Take()
	return LineTerminator{span: source.Single(loc)}, true, nil
}

// LineTerminatorSeq is a logical line break: CRLF lexed as one
// two-character unit, otherwise a single line terminator character.
// Grammar contexts that must treat CRLF as one break (string line
// continuations, the end of a single-line comment) use this instead of
// [LineTerminator].
type LineTerminatorSeq struct {
	span source.Span
}

func (l LineTerminatorSeq) Span() source.Span { return l.span }

func peekLineTerminatorSeq(cur *source.Cursor) bool {
	return peekLineTerminator(cur)
}

func lexLineTerminatorSeq(cur *source.Cursor) (LineTerminatorSeq, bool, error) {
	r, ok := cur.Peek()
	if !ok || !isLineTerminator(r) {
		return LineTerminatorSeq{}, false, nil
	}
	start, _, _ := cur.Take()
	if next, ok := cur.Peek(); r == '\r' && ok && next == '\n' {
		end, _, _ := cur.Take()
		return LineTerminatorSeq{span: rangeSpan(start, end)}, true, nil
	}
	return LineTerminatorSeq{span: source.Single(start)}, true, nil
}

// Comment is either form of comment.
type Comment interface {
	InputElement
	comment()
}

func lexComment(cur *source.Cursor) (Comment, bool, error) {
	return first(cur,
		asComment(lexMultiLineComment),
		asComment(lexSingleLineComment),
	)
}

func peekComment(cur *source.Cursor) bool {
	return peekMultiLineComment(cur) || peekSingleLineComment(cur)
}

// asComment adapts a concrete comment lexer to the Comment sum.
func asComment[T Comment](lex lexFunc[T]) lexFunc[Comment] {
	return func(cur *source.Cursor) (Comment, bool, error) {
		v, ok, err := lex(cur)
		if !ok || err != nil {
			return nil, false, err
		}
		return v, true, nil
	}
}

// SingleLineComment is // through the last character before the next line
// terminator. A comment cut short by end of input is accepted: it
// terminates at end of input, not with an error.
type SingleLineComment struct {
	span source.Span
}

func (c SingleLineComment) Span() source.Span { return c.span }
func (SingleLineComment) inputElement()       {}
func (SingleLineComment) comment()            {}

func peekSingleLineComment(cur *source.Cursor) bool {
	return peekVerbatim(cur, "//")
}

func lexSingleLineComment(cur *source.Cursor) (SingleLineComment, bool, error) {
	if !peekSingleLineComment(cur) {
		return SingleLineComment{}, false, nil
	}
	start, _, _ := cur.Take()
	end, _, _ := cur.Take()
	for {
		r, ok := cur.Peek()
		if !ok || isLineTerminator(r) {
			break
		}
		end, _, _ = cur.Take()
	}
	return SingleLineComment{span: rangeSpan(start, end)}, true, nil
}

// MultiLineComment is /* through the next */. The body is not nestable.
type MultiLineComment struct {
	span source.Span
}

func (c MultiLineComment) Span() source.Span { return c.span }
func (MultiLineComment) inputElement()       {}
func (MultiLineComment) comment()            {}

func peekMultiLineComment(cur *source.Cursor) bool {
	return peekVerbatim(cur, "/*")
}

func lexMultiLineComment(cur *source.Cursor) (MultiLineComment, bool, error) {
	if !peekMultiLineComment(cur) {
		return MultiLineComment{}, false, nil
	}
	start, _, _ := cur.Take()
	cur.Take()
	for !peekVerbatim(cur, "*/") {
		if _, _, ok := cur.Take(); !ok {
			return MultiLineComment{}, false, errAt(ErrUnterminatedComment, start)
		}
	}
	cur.Take() // *
	end, _, _ := cur.Take()
	return MultiLineComment{span: rangeSpan(start, end)}, true, nil
}
