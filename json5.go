// Package json5 provides lexical analysis for JSON5 source text: a
// precisely-spanned stream of identifiers, punctuators, string and number
// literals, whitespace, line terminators and comments, classified per the
// ECMAScript 5.1 lexical grammar.
//
// The package does not parse values or build a document tree; it produces
// the token stream a JSON5 parser consumes. Trivia (whitespace, comments,
// line terminators) is part of the stream: filter it with [Tokens] or in
// your own grammar.
package json5

import (
	"iter"

	"github.com/agentable/json5/lexer"
	"github.com/agentable/json5/source"
)

// Lex tokenizes src, returning every input element including trivia.
func Lex(src string) ([]lexer.InputElement, error) {
	var elements []lexer.InputElement
	for el, err := range Elements(src) {
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
	}
	return elements, nil
}

// Tokens tokenizes src and returns only the non-trivia tokens.
func Tokens(src string) ([]lexer.Token, error) {
	var tokens []lexer.Token
	for el, err := range Elements(src) {
		if err != nil {
			return nil, err
		}
		if tok, ok := el.(lexer.Token); ok {
			tokens = append(tokens, tok)
		}
	}
	return tokens, nil
}

// Elements returns an iterator over the input elements of src. Iteration
// stops at end of input or at the first error.
func Elements(src string) iter.Seq2[lexer.InputElement, error] {
	return lexer.NewScanner(source.NewFile("", src)).All()
}

// Valid reports whether src lexes without error.
func Valid(src string) bool {
	for _, err := range Elements(src) {
		if err != nil {
			return false
		}
	}
	return true
}
