package radix

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDigit(t *testing.T) {
	assert.True(t, IsDigit('0', 2))
	assert.True(t, IsDigit('1', 2))
	assert.False(t, IsDigit('2', 2))
	assert.True(t, IsDigit('7', 8))
	assert.False(t, IsDigit('8', 8))
	assert.True(t, IsDigit('9', 10))
	assert.True(t, IsDigit('A', 16))
	assert.True(t, IsDigit('f', 16))
	assert.False(t, IsDigit('G', 16))
	assert.False(t, IsDigit('g', 16))

	// Underscore is a group separator and always counts.
	assert.True(t, IsDigit('_', 2))
	assert.True(t, IsDigit('_', 16))

	// Extended letter range for the general [2,36] case.
	assert.True(t, IsDigit('Z', 36))
	assert.True(t, IsDigit('z', 36))
	assert.False(t, IsDigit('Z', 35))
}

func TestNormalize_ImplicitMultiplication(t *testing.T) {
	cases := []struct {
		expr  string
		radix uint32
		want  string
	}{
		{"2(3+1)", 10, "2*(3+1)"},
		{"2pi", 10, "2*pi"},
		{"(1+2)(3+4)", 10, "(1+2)*(3+4)"},
		{"sin(0)", 10, "sin(0)"},
		{"2sin(0)", 10, "2*sin(0)"},
		{"pi pi", 10, "pi*pi"},
		{"(1+2)3", 10, "(1+2)*3"},
		{"pi(2)", 10, "pi*(2)"},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			got, err := Normalize(tc.expr, tc.radix)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalize_Rebasing(t *testing.T) {
	cases := []struct {
		expr  string
		radix uint32
		want  string
	}{
		{"A+B", 16, "10+11"},
		{"FF", 16, "255"},
		{"ff", 16, "255"},
		{"1010+1111", 2, "10+15"},
		{"777", 8, "511"},
		{"1_000", 10, "1000"},
		{"F_F", 16, "255"},
		{"0", 2, "0"},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			got, err := Normalize(tc.expr, tc.radix)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalize_UnaryMinus(t *testing.T) {
	cases := []struct {
		expr string
		want string
	}{
		{"-5+3", "-5+3"},
		{"3-5", "3-5"},
		{"(-5)", "(-5)"},
		{"min(-1,2)", "min(-1,2)"},
		{"-1.5", "-1.5"},
		// A signed literal directly after an operator is grouped so the
		// output stays valid infix.
		{"2*-3", "2*(-3)"},
		{"2^-2", "2^(-2)"},
		{"2+-3", "2+(-3)"},
		{"4/-2", "4/(-2)"},
		{"2*-3pi", "2*(-3)*pi"},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			got, err := Normalize(tc.expr, 10)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("hex unary", func(t *testing.T) {
		got, err := Normalize("-FF+1", 16)
		require.NoError(t, err)
		assert.Equal(t, "-255+1", got)
	})
}

func TestNormalize_DecimalLiterals(t *testing.T) {
	got, err := Normalize("1.5+2", 10)
	require.NoError(t, err)
	assert.Equal(t, "1.5+2", got)

	got, err = Normalize("1_0.2_5", 10)
	require.NoError(t, err)
	assert.Equal(t, "10.25", got)
}

func TestNormalize_Errors(t *testing.T) {
	cases := []struct {
		name  string
		expr  string
		radix uint32
		code  ErrorCode
	}{
		{"letter beyond hex digits", "G", 16, ErrDigitOutOfRadix},
		{"digit beyond radix", "3", 2, ErrDigitOutOfRadix},
		{"digit run beyond radix", "1019", 2, ErrDigitOutOfRadix},
		{"double dot", "1.2.3", 10, ErrMultipleDecimalPoints},
		{"trailing dot", "1.", 10, ErrMalformedDecimal},
		{"leading dot", ".5", 10, ErrMalformedDecimal},
		{"dot outside radix 10", "1.1", 16, ErrMalformedDecimal},
		{"dangling unary minus", "2+-", 10, ErrUnaryMinusNoDigits},
		{"unary minus without digits", "-pi", 10, ErrUnaryMinusNoDigits},
		{"unsupported char", "1+#", 10, ErrUnsupportedChar},
		{"oversized literal", "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF", 16, ErrNumberTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Normalize(tc.expr, tc.radix)
			require.Error(t, err)
			var nerr *NormalizeError
			require.True(t, errors.As(err, &nerr))
			assert.Equal(t, tc.code, nerr.Code)
		})
	}
}

func TestNormalize_WhitespaceAndEmpty(t *testing.T) {
	got, err := Normalize("  1 + 2 ", 10)
	require.NoError(t, err)
	assert.Equal(t, "1+2", got)

	got, err = Normalize("", 10)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestIsFunctionName(t *testing.T) {
	assert.True(t, IsFunctionName("sin"))
	assert.True(t, IsFunctionName("SQRT"))
	assert.True(t, IsFunctionName("Max"))
	assert.False(t, IsFunctionName("pi"))
	assert.False(t, IsFunctionName("foo"))
}
