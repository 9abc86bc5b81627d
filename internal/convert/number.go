// Package convert implements the direct, stateless conversions: integers
// across bases, ASCII/hex text, IEEE-754 float bit patterns, and the bit
// viewer operations. These are the straight-line counterparts to the
// radix-aware calculator pipeline in internal/radix.
package convert

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// NumberBase selects how a number-conversion input is parsed.
type NumberBase int

const (
	BaseBinary NumberBase = iota
	BaseDecimal
	BaseHexadecimal
)

func (b NumberBase) String() string {
	switch b {
	case BaseBinary:
		return "binary"
	case BaseDecimal:
		return "decimal"
	case BaseHexadecimal:
		return "hexadecimal"
	}
	return "unknown"
}

// ErrEmptyInput is returned when an input is blank after separator stripping.
var ErrEmptyInput = errors.New("input is empty")

// NumberResult holds one value rendered in all three UI bases.
type NumberResult struct {
	Binary      string
	Decimal     string
	Hexadecimal string
}

// Number parses input as an unsigned 64-bit integer in the given base and
// renders it in binary, decimal and hexadecimal at once. Underscores and
// spaces are separator noise and are stripped first.
func Number(input string, base NumberBase) (NumberResult, error) {
	s := strings.ToUpper(stripSeparators(input))
	if s == "" {
		return NumberResult{}, ErrEmptyInput
	}

	var bits int
	switch base {
	case BaseBinary:
		bits = 2
	case BaseDecimal:
		bits = 10
	case BaseHexadecimal:
		bits = 16
	default:
		return NumberResult{}, fmt.Errorf("unknown number base %d", base)
	}

	n, err := strconv.ParseUint(s, bits, 64)
	if err != nil {
		return NumberResult{}, fmt.Errorf("cannot parse %s input: %w", base, err)
	}

	return NumberResult{
		Binary:      strconv.FormatUint(n, 2),
		Decimal:     strconv.FormatUint(n, 10),
		Hexadecimal: strings.ToUpper(strconv.FormatUint(n, 16)),
	}, nil
}

func stripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || r == ' ' {
			return -1
		}
		return r
	}, s)
}
