package compliance

import (
	_ "embed"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/stretchr/testify/require"

	"github.com/agentable/json5"
	"github.com/agentable/json5/lexer"
)

// The cases are adapted from the json5/json5-tests corpus:
// https://github.com/json5/json5-tests

//go:embed testdata/cases.json
var casesJSON []byte

// suite represents the structure of the cases file.
type suite struct {
	Description string       `json:"description"`
	Tests       []testCase   `json:"tests"`
	Strings     []stringCase `json:"strings"`
}

// testCase is a single lexing case: a JSON5 source and whether it lexes,
// plus the expected non-trivia token count for valid sources.
type testCase struct {
	Name   string `json:"name"`
	Source string `json:"source"`
	Valid  bool   `json:"valid"`
	Tokens int    `json:"tokens"`
}

// stringCase is a strict-JSON string literal. JSON5 is a superset, so the
// lexer's decoded value must agree with a JSON decoder's.
type stringCase struct {
	Name string `json:"name"`
	JSON string `json:"json"`
}

func TestCompliance(t *testing.T) {
	var s suite
	require.NoError(t, json.Unmarshal(casesJSON, &s))

	for _, tc := range s.Tests {
		t.Run(tc.Name, func(t *testing.T) {
			tokens, err := json5.Tokens(tc.Source)
			if !tc.Valid {
				require.Error(t, err, "expected a lexing error")
				return
			}
			require.NoError(t, err)
			require.Len(t, tokens, tc.Tokens)
		})
	}
}

func TestStringAgreement(t *testing.T) {
	var s suite
	require.NoError(t, json.Unmarshal(casesJSON, &s))

	for _, tc := range s.Strings {
		t.Run(tc.Name, func(t *testing.T) {
			var want string
			require.NoError(t, json.Unmarshal([]byte(tc.JSON), &want))

			tokens, err := json5.Tokens(tc.JSON)
			require.NoError(t, err)
			require.Len(t, tokens, 1)

			str, ok := tokens[0].(lexer.String)
			require.True(t, ok)
			require.Equal(t, want, str.Value())
		})
	}
}
