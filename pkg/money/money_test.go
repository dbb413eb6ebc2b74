package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseLenient(t *testing.T) {
	cases := map[string]string{
		"350":      "350",
		"350.50":   "350.5",
		" 1 200,5": "1200.5",
		"":         "0",
		"abc":      "0",
		"-15.25":   "-15.25",
	}
	for input, want := range cases {
		got := Parse(input)
		assert.True(t, got.Equal(decimal.RequireFromString(want)), "Parse(%q) = %s, want %s", input, got, want)
	}
}

func TestFormatFixedTwoDecimals(t *testing.T) {
	assert.Equal(t, "3500.00", Format(decimal.NewFromInt(3500)))
	assert.Equal(t, "0.10", Format(decimal.RequireFromString("0.1")))
	assert.Equal(t, "-200.00", Format(decimal.NewFromInt(-200)))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, "1.35", Round2(decimal.RequireFromString("1.345")).String())
	assert.True(t, IsZero(Parse("0.001")))
	assert.False(t, IsZero(Parse("0.01")))
}
