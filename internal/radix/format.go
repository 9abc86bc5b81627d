package radix

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// fracTolerance is the cutoff below which remaining fractional mass is
// treated as floating-point noise rather than real digits.
const fracTolerance = 1e-12

// maxMagnitude is 2^127, the largest integer magnitude rendered digit by
// digit. Anything bigger falls back to decimal notation.
var maxMagnitude = new(big.Int).Lsh(big.NewInt(1), 127)

// Format renders value in the target radix with at most fracDigits
// fractional digits. Values within a relative tolerance of an integer are
// rendered as exact integers; very large magnitudes fall back to decimal
// with an explicit annotation; radix 10 uses native decimal formatting.
func Format(value float64, radix uint32, fracDigits int) string {
	nearest := math.Round(value)
	tol := math.Max(fracTolerance, fracTolerance*math.Abs(nearest))
	if math.Abs(value-nearest) <= tol {
		if bi, ok := bigIntFromFloat(nearest); ok {
			return formatInt(bi, radix)
		}
	}
	return formatFloat(value, radix, fracDigits)
}

// FormatInt64 renders a signed integer in the target radix.
func FormatInt64(v int64, radix uint32) string {
	return formatInt(big.NewInt(v), radix)
}

// bigIntFromFloat converts an integral float64 into a big.Int, refusing
// magnitudes beyond 128 signed bits.
func bigIntFromFloat(v float64) (*big.Int, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, false
	}
	bi, _ := big.NewFloat(v).Int(nil)
	if new(big.Int).Abs(bi).Cmp(maxMagnitude) > 0 {
		return nil, false
	}
	return bi, true
}

// formatInt renders a signed big.Int whose magnitude fits 128 bits.
func formatInt(v *big.Int, radix uint32) string {
	neg := v.Sign() < 0
	mag := new(big.Int).Abs(v)
	s := formatMagnitude(mag, radix)
	if neg {
		return "-" + s
	}
	return s
}

// formatMagnitude is the repeated-division digit renderer: least significant
// digit first, reversed at the end. Hex digits (and beyond) are uppercase.
func formatMagnitude(v *big.Int, radix uint32) string {
	if v.Sign() == 0 {
		return "0"
	}
	if radix == 10 {
		return v.String()
	}
	var buf []byte
	n := new(big.Int).Set(v)
	r := big.NewInt(int64(radix))
	mod := new(big.Int)
	for n.Sign() > 0 {
		n.QuoRem(n, r, mod)
		buf = append(buf, digitRune(uint32(mod.Uint64())))
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// formatFloat renders a non-integral value: sign, integer part by repeated
// division, fractional part by repeated multiply-and-floor with an early
// stop once the remainder drops below the tolerance.
func formatFloat(value float64, radix uint32, fracDigits int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "NaN"
	}
	if radix == 10 {
		return trimFloat(strconv.FormatFloat(value, 'f', 12, 64))
	}

	neg := math.Signbit(value)
	abs := math.Abs(value)
	intPart := math.Trunc(abs)

	// Integer part beyond 128 bits cannot be rendered digit by digit without
	// loss; annotate a plain decimal rendering instead.
	bi, ok := bigIntFromFloat(intPart)
	if !ok {
		return trimFloat(strconv.FormatFloat(value, 'f', 12, 64)) + " (decimal)"
	}

	intStr := formatMagnitude(bi, radix)
	frac := abs - intPart

	var fracBuf []byte
	if fracDigits > 0 && frac > 0 {
		r := float64(radix)
		f := frac
		for len(fracBuf) < fracDigits {
			f *= r
			d := math.Floor(f)
			fracBuf = append(fracBuf, digitRune(uint32(d)))
			f -= d
			if f < fracTolerance {
				break
			}
		}
	}

	s := intStr
	if len(fracBuf) > 0 {
		s = intStr + "." + string(fracBuf)
	}
	if neg && s != "0" {
		s = "-" + s
	}
	return s
}

// trimFloat removes trailing zeros (and a trailing dot) from a fixed-point
// decimal rendering.
func trimFloat(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
