package convert

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Float32ToHex parses input as a float32 and returns its IEEE-754 bit
// pattern as eight uppercase hex digits.
func Float32ToHex(input string) (string, error) {
	s := stripSeparators(input)
	if s == "" {
		return "", ErrEmptyInput
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return "", fmt.Errorf("cannot parse float32: %w", err)
	}
	return fmt.Sprintf("%08X", math.Float32bits(float32(f))), nil
}

// Float32Analysis is the decoded IEEE-754 field breakdown for a bit pattern.
type Float32Analysis struct {
	Bits     uint32
	Sign     uint32
	Exponent uint32
	Mantissa uint32
	Value    float32
}

// Render produces the multi-line human-readable breakdown shown next to a
// decoded float.
func (a Float32Analysis) Render() string {
	signWord := "positive"
	if a.Sign == 1 {
		signWord = "negative"
	}
	var b strings.Builder
	b.WriteString("IEEE 754 single-precision breakdown:\n")
	fmt.Fprintf(&b, "raw hex:            0x%08X\n", a.Bits)
	fmt.Fprintf(&b, "binary:             %032b\n", a.Bits)
	fmt.Fprintf(&b, "sign (1 bit):       %d (%s)\n", a.Sign, signWord)
	fmt.Fprintf(&b, "exponent (8 bits):  %08b (%d)\n", a.Exponent, a.Exponent)
	fmt.Fprintf(&b, "mantissa (23 bits): %023b (0x%06X)\n", a.Mantissa, a.Mantissa)
	fmt.Fprintf(&b, "value:              %v", a.Value)
	return b.String()
}

// HexToFloat32 decodes an eight-digit hex bit pattern into a float32,
// returning both a display string (NaN and infinities spelled out) and the
// field analysis.
func HexToFloat32(input string) (string, Float32Analysis, error) {
	s := strings.ToUpper(stripSeparators(input))
	if s == "" {
		return "", Float32Analysis{}, ErrEmptyInput
	}
	if len(s) != 8 {
		return "", Float32Analysis{}, fmt.Errorf("hex bit pattern must be exactly 8 digits, got %d", len(s))
	}
	bits64, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return "", Float32Analysis{}, fmt.Errorf("cannot parse hex: %w", err)
	}
	bits := uint32(bits64)
	f := math.Float32frombits(bits)

	var display string
	switch {
	case f != f: // NaN
		display = "NaN (Not a Number)"
	case math.IsInf(float64(f), 1):
		display = "+Inf (Positive Infinity)"
	case math.IsInf(float64(f), -1):
		display = "-Inf (Negative Infinity)"
	default:
		display = strconv.FormatFloat(float64(f), 'g', -1, 32)
	}

	analysis := Float32Analysis{
		Bits:     bits,
		Sign:     (bits >> 31) & 1,
		Exponent: (bits >> 23) & 0xFF,
		Mantissa: bits & 0x7FFFFF,
		Value:    f,
	}
	return display, analysis, nil
}
