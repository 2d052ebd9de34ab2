// Package source provides the position, span, and cursor primitives the
// JSON5 lexer is built on.
//
// A [Loc] identifies one character in a source text; a [Span] is an
// immutable, closed range of locations attached to lexical nodes for
// diagnostics and downstream tooling. The [Cursor] walks a [File]'s
// characters one at a time and can be forked for speculative lookahead.
package source

import "fmt"

// Loc is a position within a source text, counted in characters (runes)
// from the start of the text. Locations are totally ordered and immutable.
type Loc int

// Span is a closed range [Start, End] of source locations. A span covering
// a single character has Start == End.
type Span struct {
	start Loc
	end   Loc
}

// Single returns the span covering exactly the character at loc.
func Single(loc Loc) Span {
	return Span{start: loc, end: loc}
}

// Range returns the span from start through end inclusive. It reports
// false when end precedes start.
func Range(start, end Loc) (Span, bool) {
	if end < start {
		return Span{}, false
	}
	return Span{start: start, end: end}, true
}

// Start returns the first location covered by s.
func (s Span) Start() Loc { return s.start }

// End returns the last location covered by s.
func (s Span) End() Loc { return s.end }

// Len returns the number of characters s covers.
func (s Span) Len() int { return int(s.end-s.start) + 1 }

// String returns "start..end", or just "start" for single-character spans.
func (s Span) String() string {
	if s.start == s.end {
		return fmt.Sprintf("%d", s.start)
	}
	return fmt.Sprintf("%d..%d", s.start, s.end)
}

// Combine returns the span running from the first span's start to the last
// span's end. Any gap between consecutive spans is absorbed: the result is
// the span of the construct, not of its literal text. Combination is
// associative. Combine panics when called with no spans; a node with no
// span-bearing fields is a defect in the node's shape, not a runtime
// condition.
func Combine(spans ...Span) Span {
	if len(spans) == 0 {
		panic("source: Combine of zero spans")
	}
	return Span{start: spans[0].start, end: spans[len(spans)-1].end}
}

// Spanned is implemented by every lexical node that knows its source range.
// For a node made of ordered sub-fields, the span is the combination of the
// sub-fields' spans in declaration order; for a terminal token it is the
// token's own span; for a sum type it is the span of the present variant.
type Spanned interface {
	Span() Span
}
