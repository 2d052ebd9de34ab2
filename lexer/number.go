package lexer

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/agentable/json5/source"
)

// HexDigit is a single hexadecimal digit character.
type HexDigit struct {
	span source.Span
	raw  rune
}

func (d HexDigit) Span() source.Span { return d.span }

// Raw returns the digit character as written.
func (d HexDigit) Raw() rune { return d.raw }

// Value returns the digit's numeric value, 0 through 15.
func (d HexDigit) Value() rune {
	switch {
	case '0' <= d.raw && d.raw <= '9':
		return d.raw - '0'
	case 'a' <= d.raw && d.raw <= 'f':
		return d.raw - 'a' + 10
	default:
		return d.raw - 'A' + 10
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

func peekHexDigit(cur *source.Cursor) bool {
	return cur.Upcoming(isHexDigit)
}

func lexHexDigit(cur *source.Cursor) (HexDigit, bool, error) {
	if !peekHexDigit(cur) {
		return HexDigit{}, false, nil
	}
	loc, raw, _ := cur.Take()
	return HexDigit{span: source.Single(loc), raw: raw}, true, nil
}

// NumberKind identifies the form of a numeric literal.
type NumberKind int8

const (
	Decimal NumberKind = iota // decimal integer or float, optional exponent
	Hex                       // 0x / 0X hexadecimal integer
	Inf                       // the Infinity keyword
	NaN                       // the NaN keyword
)

var numberKindNames = [...]string{
	Decimal: "decimal",
	Hex:     "hex",
	Inf:     "Infinity",
	NaN:     "NaN",
}

// String returns the human-readable name of k.
func (k NumberKind) String() string {
	if int(k) < len(numberKindNames) {
		return numberKindNames[k]
	}
	return fmt.Sprintf("NumberKind(%d)", k)
}

// Number is a JSON5 numeric literal: a decimal literal with optional
// fraction and exponent, a hexadecimal integer, or the Infinity and NaN
// keywords, each optionally preceded by a sign.
type Number struct {
	span  source.Span
	kind  NumberKind
	raw   string
	value float64
}

func (n Number) Span() source.Span { return n.span }

// Kind returns the literal's form.
func (n Number) Kind() NumberKind { return n.kind }

// Raw returns the literal as written in the source.
func (n Number) Raw() string { return n.raw }

// Value returns the numeric value the literal denotes.
func (n Number) Value() float64 { return n.value }

func (Number) inputElement() {}
func (Number) token()        {}

func peekNumber(cur *source.Cursor) bool {
	n := 0
	r, ok := cur.Peek()
	if !ok {
		return false
	}
	if r == '+' || r == '-' {
		n = 1
		if r, ok = cur.PeekAt(1); !ok {
			return false
		}
	}
	switch {
	case isDigit(r):
		return true
	case r == '.':
		d, ok := cur.PeekAt(n + 1)
		return ok && isDigit(d)
	default:
		return peekLit(cur, n, "Infinity") || peekLit(cur, n, "NaN")
	}
}

// lexNumber scans a numeric literal. The sign is only committed when peek
// has already seen a numeric continuation behind it, so a stray sign is a
// non-match rather than a malformed token.
func lexNumber(cur *source.Cursor) (Number, bool, error) {
	if !peekNumber(cur) {
		return Number{}, false, nil
	}
	start := cur.Loc()
	var raw strings.Builder
	negative := false
	if r, _ := cur.Peek(); r == '+' || r == '-' {
		_, sign, _ := cur.Take()
		raw.WriteRune(sign)
		negative = sign == '-'
	}

	var (
		kind NumberKind
		end  source.Loc
	)
	switch r, _ := cur.Peek(); {
	case peekVerbatim(cur, "Infinity"):
		v, _, _ := lexVerbatim(cur, "Infinity")
		raw.WriteString(v.Text())
		kind, end = Inf, v.Span().End()
	case peekVerbatim(cur, "NaN"):
		v, _, _ := lexVerbatim(cur, "NaN")
		raw.WriteString(v.Text())
		kind, end = NaN, v.Span().End()
	case r == '0' && (peekLit(cur, 1, "x") || peekLit(cur, 1, "X")):
		var err error
		if end, err = scanHexDigits(cur, &raw); err != nil {
			return Number{}, false, err
		}
		kind = Hex
	default:
		var err error
		if end, err = scanDecimal(cur, &raw); err != nil {
			return Number{}, false, err
		}
		kind = Decimal
	}

	// A numeric literal must not run straight into an identifier or
	// another digit (ECMAScript 5.1 §7.8.3): "3in" fails loudly instead
	// of splitting into two tokens.
	if r, ok := cur.Peek(); ok && (isIdentStart(r) || isDigit(r)) {
		return Number{}, false, errAt(ErrNumber, cur.Loc())
	}

	return Number{
		span:  rangeSpan(start, end),
		kind:  kind,
		raw:   raw.String(),
		value: numberValue(kind, raw.String(), negative),
	}, true, nil
}

// scanHexDigits consumes 0x (or 0X) and at least one hex digit.
func scanHexDigits(cur *source.Cursor, raw *strings.Builder) (source.Loc, error) {
	_, zero, _ := cur.Take()
	end, marker, _ := cur.Take()
	raw.WriteRune(zero)
	raw.WriteRune(marker)
	if !peekHexDigit(cur) {
		return 0, errAt(ErrNumber, cur.Loc())
	}
	for peekHexDigit(cur) {
		var r rune
		end, r, _ = cur.Take()
		raw.WriteRune(r)
	}
	return end, nil
}

// scanDecimal consumes a decimal literal: integer digits and/or a fraction,
// then an optional exponent. A trailing dot ("42.") and a leading dot
// (".5") are both legal JSON5.
func scanDecimal(cur *source.Cursor, raw *strings.Builder) (source.Loc, error) {
	var end source.Loc

	if cur.Upcoming(isDigit) {
		var r rune
		end, r, _ = cur.Take()
		raw.WriteRune(r)
		if r == '0' && cur.Upcoming(isDigit) {
			return 0, errAt(ErrLeadingZero, end)
		}
		for cur.Upcoming(isDigit) {
			end, r, _ = cur.Take()
			raw.WriteRune(r)
		}
	}

	if cur.Upcoming(func(r rune) bool { return r == '.' }) {
		var r rune
		end, r, _ = cur.Take()
		raw.WriteRune(r)
		for cur.Upcoming(isDigit) {
			end, r, _ = cur.Take()
			raw.WriteRune(r)
		}
	}

	if cur.Upcoming(func(r rune) bool { return r == 'e' || r == 'E' }) {
		var r rune
		end, r, _ = cur.Take()
		raw.WriteRune(r)
		if cur.Upcoming(func(r rune) bool { return r == '+' || r == '-' }) {
			end, r, _ = cur.Take()
			raw.WriteRune(r)
		}
		if !cur.Upcoming(isDigit) {
			return 0, errAt(ErrNumber, cur.Loc())
		}
		for cur.Upcoming(isDigit) {
			end, r, _ = cur.Take()
			raw.WriteRune(r)
		}
	}

	return end, nil
}

// numberValue cooks the literal's numeric value. The grammar has already
// validated raw, so parse failures cannot occur for decimal forms.
func numberValue(kind NumberKind, raw string, negative bool) float64 {
	switch kind {
	case Inf:
		if negative {
			return math.Inf(-1)
		}
		return math.Inf(1)
	case NaN:
		return math.NaN()
	case Hex:
		digits := strings.TrimLeft(raw, "+-")[2:] // strip sign and 0x
		v := 0.0
		for _, r := range digits {
			v = v*16 + float64(HexDigit{raw: r}.Value())
		}
		if negative {
			return -v
		}
		return v
	default:
		v, _ := strconv.ParseFloat(raw, 64)
		return v
	}
}
