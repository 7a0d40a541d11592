package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  float64
	}{
		{"plain integer", "42", 42},
		{"decimal", "150.40", 150.40},
		{"padded", "  99.5 ", 99.5},
		{"blank", "", 0},
		{"whitespace only", "   ", 0},
		{"garbage", "abc", 0},
		{"trailing junk", "12x", 0},
		{"negative passes through", "-5", -5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseAmount(tc.input))
		})
	}
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, 0.0, Sanitize(math.NaN()))
	assert.Equal(t, 0.0, Sanitize(math.Inf(1)))
	assert.Equal(t, 0.0, Sanitize(-3))
	assert.Equal(t, 7.25, Sanitize(7.25))
}

func TestRoundToUnit(t *testing.T) {
	cases := []struct {
		amount    float64
		rounded   float64
		remainder float64
	}{
		{236, 236, 0},
		{177.472, 177, -0.472},
		{100.5, 101, 0.5},
		{100.49, 100, -0.49},
		{0, 0, 0},
	}
	for _, tc := range cases {
		rounded, remainder := RoundToUnit(tc.amount)
		assert.Equal(t, tc.rounded, rounded)
		assert.InDelta(t, tc.remainder, remainder, 1e-9)
	}
}

func TestFormatIndianGrouping(t *testing.T) {
	assert.Equal(t, "1,23,456.70", Format(123456.7))
	assert.Equal(t, "236.00", Format(236))
	assert.Equal(t, "0.00", Format(0))
}
