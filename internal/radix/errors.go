package radix

import "fmt"

// ErrorCode identifies the class of a normalization failure. Codes are stable
// so callers can branch on them without string matching.
type ErrorCode int

const (
	// ErrUnsupportedChar: the input contains a rune the tokenizer does not know.
	ErrUnsupportedChar ErrorCode = iota + 1
	// ErrDigitOutOfRadix: a numeric literal uses a digit not valid in the radix.
	ErrDigitOutOfRadix
	// ErrMultipleDecimalPoints: a decimal literal contains more than one '.'.
	ErrMultipleDecimalPoints
	// ErrMalformedDecimal: a '.' appears at the start or end of a literal, or
	// outside radix 10.
	ErrMalformedDecimal
	// ErrUnaryMinusNoDigits: a unary minus is not followed by any digit.
	ErrUnaryMinusNoDigits
	// ErrNumberTooLarge: an integer literal does not fit in 128 signed bits.
	ErrNumberTooLarge
	// ErrEmptyNumber: a numeric token has no digits once separators are stripped.
	ErrEmptyNumber
)

// NormalizeError reports why an expression could not be rewritten. All
// normalization failures are detected before any request is sent to the
// compute worker.
type NormalizeError struct {
	Code  ErrorCode
	Rune  rune   // offending rune, when meaningful
	Radix uint32 // radix in effect at the failure
}

func (e *NormalizeError) Error() string {
	switch e.Code {
	case ErrUnsupportedChar:
		return fmt.Sprintf("unsupported character: %q", e.Rune)
	case ErrDigitOutOfRadix:
		return fmt.Sprintf("digit %q is out of range for radix %d", e.Rune, e.Radix)
	case ErrMultipleDecimalPoints:
		return "number contains more than one decimal point"
	case ErrMalformedDecimal:
		return "malformed decimal literal"
	case ErrUnaryMinusNoDigits:
		return "unary minus is not followed by a number"
	case ErrNumberTooLarge:
		return "number exceeds the 128-bit range"
	case ErrEmptyNumber:
		return "empty numeric literal"
	}
	return fmt.Sprintf("normalization error (code %d)", int(e.Code))
}

func newError(code ErrorCode, r rune, radix uint32) *NormalizeError {
	return &NormalizeError{Code: code, Rune: r, Radix: radix}
}
