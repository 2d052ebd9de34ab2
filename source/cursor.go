package source

// Cursor reads a [File]'s characters one at a time, tracking the location
// of each. Peeking never advances; [Cursor.Take] is the only mutating
// operation. No operation errors: exhaustion is reported through the
// boolean result.
//
// A fork is an independent copy observing the same text. It is the
// sanctioned mechanism for speculative lookahead deeper than a couple of
// characters: advance the fork freely, then either discard it or adopt its
// position with [Cursor.Commit]. Forking never commits by itself.
type Cursor struct {
	src []rune
	pos int
}

// Cursor returns a cursor positioned at the start of f.
func (f *File) Cursor() *Cursor {
	return &Cursor{src: f.runes}
}

// Peek returns the character at the current position without consuming it.
func (c *Cursor) Peek() (rune, bool) {
	return c.PeekAt(0)
}

// PeekAt returns the character n positions ahead (0-based) without
// consuming anything.
func (c *Cursor) PeekAt(n int) (rune, bool) {
	if i := c.pos + n; i < len(c.src) {
		return c.src[i], true
	}
	return 0, false
}

// Take consumes the current character, returning it with its location.
// Locations strictly increase across successive takes.
func (c *Cursor) Take() (Loc, rune, bool) {
	if c.pos >= len(c.src) {
		return Loc(c.pos), 0, false
	}
	loc, r := Loc(c.pos), c.src[c.pos]
	c.pos++
	return loc, r, true
}

// Loc returns the location of the next character to be consumed, or the
// location just past the last character when the cursor is exhausted.
func (c *Cursor) Loc() Loc { return Loc(c.pos) }

// Fork returns an independent copy of c. The fork shares the underlying
// text but advances on its own; discarding it leaves c untouched.
func (c *Cursor) Fork() *Cursor {
	fork := *c
	return &fork
}

// Commit moves c to fork's position. Call it after a speculative match on
// a fork of c succeeds.
func (c *Cursor) Commit(fork *Cursor) {
	c.pos = fork.pos
}

// Upcoming reports whether the next character exists and satisfies pred.
func (c *Cursor) Upcoming(pred func(rune) bool) bool {
	r, ok := c.Peek()
	return ok && pred(r)
}
