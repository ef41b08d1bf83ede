package coercer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumeric(t *testing.T) {
	c := NewTypeCoercer(DefaultCoercionConfig())

	tests := []struct {
		raw  string
		want float64
	}{
		{"0", 0},
		{" 2534.666 ", 2534.666},
		{"1,000", 1000},
		{"15,600.5", 15600.5},
		{"12 500", 12500},
		{"(12)", -12},
		{"(1,000)", -1000},
		{"1e3", 1000},
	}
	for _, tt := range tests {
		got, err := c.ParseNumeric(tt.raw)
		require.NoError(t, err, "raw %q", tt.raw)
		assert.Equal(t, tt.want, got, "raw %q", tt.raw)
	}

	for _, raw := range []string{"", "   ", "heavy", "1,5", "12,34,5", "NaN", "Inf", "-inf"} {
		_, err := c.ParseNumeric(raw)
		assert.Error(t, err, "raw %q", raw)
	}
}

func TestParseNumeric_StrictConfig(t *testing.T) {
	c := NewTypeCoercer(CoercionConfig{})

	_, err := c.ParseNumeric("1,000")
	assert.Error(t, err)
	_, err = c.ParseNumeric("(12)")
	assert.Error(t, err)
}

func TestParseInteger(t *testing.T) {
	c := NewTypeCoercer(DefaultCoercionConfig())

	n, err := c.ParseInteger("1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = c.ParseInteger("0.0")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = c.ParseInteger("1.5")
	assert.Error(t, err)
}

func TestNormalizeString(t *testing.T) {
	c := NewTypeCoercer(DefaultCoercionConfig())
	assert.Equal(t, "CCAFS LC-40", c.NormalizeString("  CCAFS   LC-40 "))

	raw := NewTypeCoercer(CoercionConfig{})
	assert.Equal(t, "CCAFS   LC-40", raw.NormalizeString("  CCAFS   LC-40 "))
}
