package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestASCIIToHex(t *testing.T) {
	assert.Equal(t, "48 69", ASCIIToHex("Hi"))
	assert.Equal(t, "20", ASCIIToHex(" "))
	assert.Equal(t, "", ASCIIToHex(""))
}

func TestHexToASCII(t *testing.T) {
	t.Run("printable", func(t *testing.T) {
		s, err := HexToASCII("48 69")
		require.NoError(t, err)
		assert.Equal(t, "Hi", s)
	})

	t.Run("non printable escaped", func(t *testing.T) {
		s, err := HexToASCII("0048FF")
		require.NoError(t, err)
		assert.Equal(t, "[0x00]H[0xFF]", s)
	})

	t.Run("odd length", func(t *testing.T) {
		_, err := HexToASCII("ABC")
		assert.ErrorIs(t, err, ErrOddHexLength)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := HexToASCII(" _ ")
		assert.ErrorIs(t, err, ErrEmptyInput)
	})

	t.Run("bad digit", func(t *testing.T) {
		_, err := HexToASCII("GG")
		assert.Error(t, err)
	})

	t.Run("round trip", func(t *testing.T) {
		const msg = "base 16!"
		back, err := HexToASCII(ASCIIToHex(msg))
		require.NoError(t, err)
		assert.Equal(t, msg, back)
	})
}
