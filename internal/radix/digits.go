// Package radix implements the radix-aware expression pipeline: classifying
// digits for an arbitrary base, rewriting an expression typed in that base
// into canonical decimal notation, and rendering a numeric result back into
// the base, fractional digits included.
package radix

// MinRadix and MaxRadix bound the bases the package accepts. The UI only
// offers 2/8/10/16, but the classifier, normalizer and formatter work for
// any base in this range (letters extend through 'Z').
const (
	MinRadix uint32 = 2
	MaxRadix uint32 = 36
)

// IsDigit reports whether r is a valid digit under the given radix.
// Underscore is always accepted; it is a visual group separator and is
// stripped before numeric parsing.
func IsDigit(r rune, radix uint32) bool {
	switch {
	case r >= '0' && r <= '9':
		return uint32(r-'0') < radix
	case r >= 'A' && r <= 'Z':
		return 10+uint32(r-'A') < radix
	case r >= 'a' && r <= 'z':
		return 10+uint32(r-'a') < radix
	case r == '_':
		return true
	}
	return false
}

// IsInputRune reports whether r is plausible calculator input under the given
// radix: a digit, whitespace, an operator/paren/comma, or an identifier
// letter. The UI uses this to flag invalid characters while typing.
func IsInputRune(r rune, radix uint32) bool {
	if r == ' ' || r == '\t' {
		return true
	}
	if IsDigit(r, radix) {
		return true
	}
	switch r {
	case '+', '-', '*', '/', '%', '^', '(', ')', ',', '.', '_':
		return true
	}
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

const digitAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// digitRune renders a single digit value as its uppercase character.
func digitRune(d uint32) byte {
	return digitAlphabet[d]
}
