package lexer

import (
	"errors"
	"fmt"

	"github.com/agentable/json5/source"
)

// Sentinel errors for malformed tokens. Lexers report them wrapped with
// the offending source position; match with errors.Is.
var (
	// ErrUnterminatedComment is returned when a multi-line comment reaches
	// end of input without a closing */.
	ErrUnterminatedComment = errors.New("json5: unterminated multi-line comment")
	// ErrUnterminatedString is returned when a string literal reaches a
	// line terminator or end of input before its closing quote.
	ErrUnterminatedString = errors.New("json5: unterminated string literal")
	// ErrEscapeDigits is returned when a hex or unicode escape has fewer
	// hex digits than it requires.
	ErrEscapeDigits = errors.New("json5: too few hex digits in escape sequence")
	// ErrLeadingZero is returned for octal-looking sequences: a zero
	// escape or numeric zero followed immediately by another digit.
	ErrLeadingZero = errors.New("json5: leading zero followed by digit")
	// ErrInvalidEscape is returned for a backslash followed by no
	// recognizable escape form.
	ErrInvalidEscape = errors.New("json5: invalid escape sequence")
	// ErrIdentifierEscape is returned when a backslash inside an
	// identifier fails full unicode escape validation.
	ErrIdentifierEscape = errors.New("json5: malformed unicode escape in identifier")
	// ErrNumber is returned for a numeric literal whose remainder violates
	// the grammar after its leading signature matched.
	ErrNumber = errors.New("json5: malformed number literal")
	// ErrUnexpectedChar is returned by [Scanner] for a character no token
	// type recognizes.
	ErrUnexpectedChar = errors.New("json5: unexpected character")
)

// errAt wraps err with the source position at which it was detected.
func errAt(err error, loc source.Loc) error {
	return fmt.Errorf("%w at position %d", err, loc)
}
