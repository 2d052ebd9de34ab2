package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentable/json5/source"
)

func TestIdentifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
		end   source.Loc
	}{
		{"ascii", "foo", "foo", 2},
		{"dollar_underscore", "$_a1", "$_a1", 3},
		{"single_underscore", "_", "_", 0},
		{"single_dollar", "$", "$", 0},
		{"unicode_letters", "café", "café", 3},
		{"letter_number", "Ⅴx", "Ⅴx", 1}, // Nl category start
		{"combining_mark", "e\u0301", "e\u0301", 1},
		{"zwj_continue", "a\u200db", "a\u200db", 2},
		{"stops_at_punct", "key:", "key", 2},
		{"stops_at_space", "ab cd", "ab", 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			id, ok, err := lexIdentifier(cursorOf(tc.input))
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tc.want, id.Name())
			assert.Equal(t, source.Loc(0), id.Span().Start())
			assert.Equal(t, tc.end, id.Span().End())
		})
	}
}

func TestIdentifierEscapes(t *testing.T) {
	t.Parallel()

	// A \uXXXX escape counts as one identifier character; the span covers
	// the raw text while the name carries the decoded form.
	id, ok, err := lexIdentifier(cursorOf(`\u0041bc`))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Abc", id.Name())
	assert.Equal(t, source.Loc(0), id.Span().Start())
	assert.Equal(t, source.Loc(7), id.Span().End())

	id, ok, err = lexIdentifier(cursorOf(`a\u0062c`))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "abc", id.Name())
	assert.Equal(t, source.Loc(7), id.Span().End())
}

func TestIdentifierInvalidStartEscape(t *testing.T) {
	t.Parallel()

	// Only \uXXXX escapes are allowed in identifiers; a hex escape or a
	// truncated unicode escape never starts one. The cursor stays put.
	for _, input := range []string{`\x41`, `\u12`, `\`, `\n`} {
		cur := cursorOf(input)
		assert.False(t, peekIdentifier(cur), "input %q", input)
		_, ok, err := lexIdentifier(cur)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, source.Loc(0), cur.Loc())
	}
}

func TestIdentifierInvalidContinuationEscape(t *testing.T) {
	t.Parallel()

	// An invalid escape after a valid prefix ends the identifier; the
	// backslash is left for the next lexer to reject.
	cur := cursorOf(`ab\x`)
	id, ok, err := lexIdentifier(cur)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "ab", id.Name())
	assert.Equal(t, source.Loc(1), id.Span().End())

	r, _ := cur.Peek()
	assert.Equal(t, '\\', r)
}

func TestIdentifierNoMatch(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "1abc", ".x", "-x", "\u200cx"} {
		cur := cursorOf(input)
		assert.False(t, peekIdentifier(cur), "input %q", input)
		_, ok, err := lexIdentifier(cur)
		require.NoError(t, err)
		assert.False(t, ok, "input %q", input)
	}
}

func TestIdentifierDigitsContinue(t *testing.T) {
	t.Parallel()

	// Digits cannot start an identifier but freely continue one.
	id, ok, err := lexIdentifier(cursorOf("x123"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "x123", id.Name())
}
