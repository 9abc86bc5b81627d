package convert

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrOddHexLength is returned when a hex string cannot be split into bytes.
var ErrOddHexLength = errors.New("hex input must have an even number of digits")

// ASCIIToHex renders each byte of s as a two-digit uppercase hex pair,
// space separated.
func ASCIIToHex(s string) string {
	if s == "" {
		return ""
	}
	parts := make([]string, 0, len(s))
	for i := 0; i < len(s); i++ {
		parts = append(parts, fmt.Sprintf("%02X", s[i]))
	}
	return strings.Join(parts, " ")
}

// HexToASCII decodes a hex string into text. Printable ASCII bytes become
// characters; everything else is rendered as an explicit [0xNN] escape so
// no byte is silently lost. Spaces and underscores are separator noise.
func HexToASCII(input string) (string, error) {
	clean := strings.ToUpper(stripSeparators(input))
	if clean == "" {
		return "", ErrEmptyInput
	}
	if len(clean)%2 != 0 {
		return "", ErrOddHexLength
	}

	var out strings.Builder
	for i := 0; i < len(clean); i += 2 {
		b, err := strconv.ParseUint(clean[i:i+2], 16, 8)
		if err != nil {
			return "", fmt.Errorf("invalid hex byte %q: %w", clean[i:i+2], err)
		}
		if b >= 32 && b <= 126 {
			out.WriteByte(byte(b))
		} else {
			fmt.Fprintf(&out, "[0x%02X]", b)
		}
	}
	return out.String(), nil
}
