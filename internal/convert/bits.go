package convert

import (
	"strconv"
	"strings"
)

// ParseHexBits expands a hex string into its bit vector, most significant
// bit of each nibble first. Non-hex characters are dropped before parsing,
// so pasted values with separators just work. Returns the cleaned hex
// alongside the bits.
func ParseHexBits(input string) (string, []bool, error) {
	var clean strings.Builder
	for _, r := range strings.ToUpper(input) {
		if (r >= '0' && r <= '9') || (r >= 'A' && r <= 'F') {
			clean.WriteRune(r)
		}
	}
	hex := clean.String()
	if hex == "" {
		return "", nil, ErrEmptyInput
	}

	bits := make([]bool, 0, len(hex)*4)
	for _, r := range hex {
		d, _ := strconv.ParseUint(string(r), 16, 8)
		for i := 3; i >= 0; i-- {
			bits = append(bits, d&(1<<uint(i)) != 0)
		}
	}
	return hex, bits, nil
}

// ToggleBit flips the bit at index, ignoring out-of-range indexes. The input
// slice is not mutated.
func ToggleBit(bits []bool, index int) []bool {
	out := append([]bool(nil), bits...)
	if index >= 0 && index < len(out) {
		out[index] = !out[index]
	}
	return out
}

// InvertBits flips every bit. The input slice is not mutated.
func InvertBits(bits []bool) []bool {
	out := make([]bool, len(bits))
	for i, b := range bits {
		out[i] = !b
	}
	return out
}

// BitsToHex packs a bit vector back into hex digits, four bits per digit.
// A trailing partial nibble is rendered as if zero-padded on the right.
func BitsToHex(bits []bool) string {
	if len(bits) == 0 {
		return ""
	}
	var out strings.Builder
	nibble := uint8(0)
	for i, b := range bits {
		pos := 3 - (i % 4)
		if b {
			nibble |= 1 << uint(pos)
		}
		if (i+1)%4 == 0 {
			out.WriteByte("0123456789ABCDEF"[nibble])
			nibble = 0
		}
	}
	if len(bits)%4 != 0 {
		out.WriteByte("0123456789ABCDEF"[nibble])
	}
	return out.String()
}

// FieldGroups splits a bit count into display groups following the
// configured field widths; leftover bits form a final group.
func FieldGroups(totalBits int, widths []int) []int {
	var groups []int
	remaining := totalBits
	for _, w := range widths {
		if remaining == 0 {
			break
		}
		g := w
		if g > remaining {
			g = remaining
		}
		groups = append(groups, g)
		remaining -= g
	}
	if remaining > 0 {
		groups = append(groups, remaining)
	}
	return groups
}

// FieldValue reads bitCount bits starting at startBit as a big-endian
// unsigned value. Bits past the end of the vector read as zero.
func FieldValue(bits []bool, startBit, bitCount int) uint64 {
	var v uint64
	for i := 0; i < bitCount; i++ {
		if startBit+i < len(bits) && bits[startBit+i] {
			v |= 1 << uint(bitCount-1-i)
		}
	}
	return v
}
