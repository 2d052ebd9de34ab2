package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentable/json5/source"
)

func TestWhiteSpace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		len   int
	}{
		{"single_space", " ", 1},
		{"run", "     ", 5},
		{"tab", "\t", 1},
		{"vertical_tab", "\v", 1},
		{"form_feed", "\f", 1},
		{"nbsp", "\u00a0", 1},
		{"zs_category", "\u2003", 1}, // EM SPACE
		{"mixed", " \t\u00a0 ", 4},
		{"stops_at_text", "  x", 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cur := cursorOf(tc.input)
			ws, ok, err := lexWhiteSpace(cur)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, source.Loc(0), ws.Span().Start())
			assert.Equal(t, tc.len, ws.Span().Len())
		})
	}
}

func TestWhiteSpaceNoMatch(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "x", "\n", "\r"} {
		cur := cursorOf(input)
		assert.False(t, peekWhiteSpace(cur))
		_, ok, err := lexWhiteSpace(cur)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, source.Loc(0), cur.Loc())
	}
}

func TestLineTerminator(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"\n", "\r", "\u2028", "\u2029"} {
		cur := cursorOf(input)
		lt, ok, err := lexLineTerminator(cur)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, source.Single(0), lt.Span())
	}
}

func TestLineTerminatorSeqCRLF(t *testing.T) {
	t.Parallel()

	// CRLF is one logical terminator spanning both characters.
	cur := cursorOf("\r\n")
	seq, ok, err := lexLineTerminatorSeq(cur)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, source.Loc(0), seq.Span().Start())
	assert.Equal(t, source.Loc(1), seq.Span().End())
	assert.Equal(t, 2, seq.Span().Len())

	// The whole sequence was consumed.
	_, _, more := cur.Take()
	assert.False(t, more)
}

func TestLineTerminatorSeqBareCR(t *testing.T) {
	t.Parallel()

	// CR not followed by LF is a single-character terminator.
	cur := cursorOf("\rx")
	seq, ok, err := lexLineTerminatorSeq(cur)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, source.Single(0), seq.Span())

	r, _ := cur.Peek()
	assert.Equal(t, 'x', r)
}

func TestSingleLineComment(t *testing.T) {
	t.Parallel()

	// The comment spans from the first slash to the last character
	// before the terminator; the terminator is a separate element.
	cur := cursorOf("// comment\n")
	c, ok, err := lexSingleLineComment(cur)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, source.Loc(0), c.Span().Start())
	assert.Equal(t, source.Loc(9), c.Span().End())

	lt, ok, err := lexLineTerminator(cur)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, source.Single(10), lt.Span())
}

func TestSingleLineCommentAtEOF(t *testing.T) {
	t.Parallel()

	// Unterminated at end of input is accepted, not an error.
	c, ok, err := lexSingleLineComment(cursorOf("// trailing"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, source.Loc(10), c.Span().End())

	// Degenerate case: nothing after the slashes.
	c, ok, err = lexSingleLineComment(cursorOf("//"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, source.Loc(1), c.Span().End())
}

func TestMultiLineComment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		end   source.Loc
	}{
		{"simple", "/* hi */", 7},
		{"empty", "/**/", 3},
		{"embedded_newlines", "/* a\nb\r\nc */", 11},
		{"star_inside", "/* * / ** */", 11},
		{"stops_at_close", "/* a */ rest", 6},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c, ok, err := lexMultiLineComment(cursorOf(tc.input))
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, source.Loc(0), c.Span().Start())
			assert.Equal(t, tc.end, c.Span().End())
		})
	}
}

func TestMultiLineCommentUnterminated(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"/* unterminated", "/*", "/**", "/* *"} {
		_, ok, err := lexMultiLineComment(cursorOf(input))
		assert.False(t, ok)
		require.ErrorIs(t, err, ErrUnterminatedComment)
	}
}

func TestCommentDispatch(t *testing.T) {
	t.Parallel()

	c, ok, err := lexComment(cursorOf("// x"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.IsType(t, SingleLineComment{}, c)

	c, ok, err = lexComment(cursorOf("/* x */"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.IsType(t, MultiLineComment{}, c)

	cur := cursorOf("/x")
	assert.False(t, peekComment(cur))
	_, ok, err = lexComment(cur)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, source.Loc(0), cur.Loc())
}
