package radix

import (
	"math/big"
	"strings"
	"unicode"
)

// tokenKind tracks the previously emitted token during normalization. It only
// exists to decide whether an implicit multiplication must be inserted before
// the next token and whether a '-' is unary.
type tokenKind int

const (
	kindStart tokenKind = iota
	kindNumber
	kindIdent
	kindLParen
	kindRParen
	kindOp
	kindComma
)

// functionNames is the fixed set of identifiers recognized as function
// applications. `sin(x)` keeps its argument list; any other identifier
// followed by '(' gets an implicit multiplication (`x(2)` -> `x*(2)`).
var functionNames = map[string]struct{}{
	"sin": {}, "cos": {}, "tan": {},
	"asin": {}, "acos": {}, "atan": {},
	"sinh": {}, "cosh": {}, "tanh": {},
	"log": {}, "ln": {}, "sqrt": {}, "abs": {},
	"floor": {}, "ceil": {}, "round": {},
	"exp": {}, "pow": {}, "min": {}, "max": {},
}

// constantNames are the single-letter-safe constants the evaluator resolves.
// They keep `e` usable as an identifier in bases where it is not a digit.
var constantNames = map[string]struct{}{
	"pi": {}, "e": {},
}

// IsFunctionName reports whether name (case-insensitive) belongs to the fixed
// function set the evaluator understands.
func IsFunctionName(name string) bool {
	_, ok := functionNames[strings.ToLower(name)]
	return ok
}

// IsConstantName reports whether name (case-insensitive) is a recognized
// constant.
func IsConstantName(name string) bool {
	_, ok := constantNames[strings.ToLower(name)]
	return ok
}

// maxLiteralBits caps integer literals at 128 signed bits: 127 magnitude bits
// plus the sign carried separately.
const maxLiteralBits = 127

// Normalize rewrites expr, whose numeric literals are written in the given
// radix, into an equivalent expression in decimal notation. It performs a
// single left-to-right scan: literals are re-based, implicit multiplication
// is made explicit (`2(3+1)` -> `2*(3+1)`, `2pi` -> `2*pi`), unary minus is
// folded into the following literal, and identifiers, operators, parentheses
// and commas pass through unchanged. It never evaluates anything.
func Normalize(expr string, radix uint32) (string, error) {
	var out strings.Builder
	chars := []rune(expr)

	last := kindStart
	lastIdent := ""
	i := 0

	for i < len(chars) {
		c := chars[i]

		if unicode.IsSpace(c) {
			i++
			continue
		}

		// Unary minus: only in prefix position. The minus and the literal
		// that follows it form a single signed token.
		if c == '-' && (last == kindStart || last == kindLParen || last == kindOp || last == kindComma) {
			end, err := scanNumber(chars, i+1, radix)
			if err != nil {
				return "", err
			}
			if end == i+1 {
				return "", newError(ErrUnaryMinusNoDigits, '-', radix)
			}
			tok, err := rebaseNumber(string(chars[i:end]), radix)
			if err != nil {
				return "", err
			}
			// After another operator the pair would read `*-3`, which is
			// not valid infix for the evaluator; group the signed literal.
			// At expression start and after '(' or ',' it stays bare.
			if last == kindOp {
				out.WriteByte('(')
				out.WriteString(tok)
				out.WriteByte(')')
			} else {
				out.WriteString(tok)
			}
			last = kindNumber
			i = end
			continue
		}

		// Numeric literal (a bare '.' is a malformed literal, not an operator).
		if IsDigit(c, radix) || c == '.' {
			if c == '.' {
				return "", newError(ErrMalformedDecimal, c, radix)
			}
			end, err := scanNumber(chars, i, radix)
			if err != nil {
				return "", err
			}
			tok, err := rebaseNumber(string(chars[i:end]), radix)
			if err != nil {
				return "", err
			}
			if last == kindNumber || last == kindRParen || last == kindIdent {
				out.WriteByte('*')
			}
			out.WriteString(tok)
			last = kindNumber
			i = end
			continue
		}

		switch c {
		case '(':
			insert := false
			switch last {
			case kindNumber, kindRParen:
				insert = true
			case kindIdent:
				insert = !IsFunctionName(lastIdent)
			}
			if insert {
				out.WriteByte('*')
			}
			out.WriteByte('(')
			last = kindLParen
			i++
			continue
		case ')':
			out.WriteByte(')')
			last = kindRParen
			i++
			continue
		case ',':
			out.WriteByte(',')
			last = kindComma
			i++
			continue
		case '+', '-', '*', '/', '%', '^':
			out.WriteRune(c)
			last = kindOp
			i++
			continue
		}

		// A bare decimal digit that failed the radix check above ('3' in
		// binary) is a bad digit, not an unknown character.
		if c >= '0' && c <= '9' {
			return "", newError(ErrDigitOutOfRadix, c, radix)
		}

		// Identifier: function or constant name, resolved by the evaluator.
		// A lone letter that is neither a digit in this radix nor a known
		// constant ('G' in hex) is an out-of-radix digit, not a variable.
		if isIdentStart(c) {
			end := i + 1
			for end < len(chars) && isIdentPart(chars[end]) {
				end++
			}
			name := string(chars[i:end])
			if len(name) == 1 && c != '_' && !IsConstantName(name) {
				return "", newError(ErrDigitOutOfRadix, c, radix)
			}
			if last == kindNumber || last == kindRParen || last == kindIdent {
				out.WriteByte('*')
			}
			out.WriteString(name)
			last = kindIdent
			lastIdent = name
			i = end
			continue
		}

		return "", newError(ErrUnsupportedChar, c, radix)
	}

	return out.String(), nil
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}

// scanNumber returns the end index of the numeric literal starting at
// position start. It validates decimal-point placement: at most one '.',
// never first or last in the token, and only under radix 10.
func scanNumber(chars []rune, start int, radix uint32) (int, error) {
	i := start
	sawDot := false
	lastWasDot := false
	for i < len(chars) {
		c := chars[i]
		if IsDigit(c, radix) {
			lastWasDot = false
			i++
			continue
		}
		if c == '.' {
			if radix != 10 || i == start {
				return 0, newError(ErrMalformedDecimal, c, radix)
			}
			if sawDot {
				return 0, newError(ErrMultipleDecimalPoints, c, radix)
			}
			sawDot = true
			lastWasDot = true
			i++
			continue
		}
		// A letter beyond the radix immediately after digits is a bad digit,
		// not the start of an identifier: `19` in radix 8, `G` runs in hex.
		if i > start && unicode.IsDigit(c) {
			return 0, newError(ErrDigitOutOfRadix, c, radix)
		}
		break
	}
	if lastWasDot {
		return 0, newError(ErrMalformedDecimal, '.', radix)
	}
	return i, nil
}

// rebaseNumber converts one numeric token (optionally '-' prefixed) from the
// source radix to decimal notation. Integer literals are parsed into a
// 128-bit signed magnitude and re-rendered in base 10; radix-10 fractional
// literals are already decimal and pass through with separators stripped.
func rebaseNumber(tok string, radix uint32) (string, error) {
	s := strings.ReplaceAll(tok, "_", "")
	neg := strings.HasPrefix(s, "-")
	body := strings.TrimPrefix(s, "-")
	if body == "" {
		return "", newError(ErrEmptyNumber, 0, radix)
	}

	if strings.Contains(body, ".") {
		// Only reachable for radix 10; digits are already decimal.
		if neg {
			return "-" + body, nil
		}
		return body, nil
	}

	for _, r := range body {
		if !IsDigit(r, radix) {
			return "", newError(ErrDigitOutOfRadix, r, radix)
		}
	}

	v, ok := new(big.Int).SetString(strings.ToUpper(body), int(radix))
	if !ok {
		return "", newError(ErrDigitOutOfRadix, 0, radix)
	}
	if v.BitLen() > maxLiteralBits {
		return "", newError(ErrNumberTooLarge, 0, radix)
	}
	if neg {
		v.Neg(v)
	}
	return v.String(), nil
}
