package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToWords(t *testing.T) {
	cases := []struct {
		name   string
		amount float64
		want   string
	}{
		{"single digit", 5, "INR Five Only"},
		{"teen", 14, "INR Fourteen Only"},
		{"tens with ones", 21, "INR Twenty One Only"},
		{"round tens", 90, "INR Ninety Only"},
		{"hundreds with connector", 236, "INR Two Hundred and Thirty Six Only"},
		{"hundred and five", 105, "INR One Hundred and Five Only"},
		{"exact hundred", 700, "INR Seven Hundred Only"},
		{"thousands", 1234, "INR One Thousand Two Hundred and Thirty Four Only"},
		{"exact thousand", 5000, "INR Five Thousand Only"},
		{"lakh", 100000, "INR One Lakh Only"},
		{"lakh composite", 123456, "INR One Lakh Twenty Three Thousand Four Hundred and Fifty Six Only"},
		{"crore", 10000000, "INR One Crore Only"},
		{"crore composite", 12345678, "INR One Crore Twenty Three Lakh Forty Five Thousand Six Hundred and Seventy Eight Only"},
		{"with paise", 236.50, "INR Two Hundred and Thirty Six and Fifty Paise Only"},
		{"paise only", 0.75, "INR Seventy Five Paise Only"},
		{"zero", 0, "INR Zero Only"},
		{"negative degrades to zero", -12, "INR Zero Only"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ToWords(tc.amount))
		})
	}
}

func TestToWordsDeterministic(t *testing.T) {
	first := ToWords(9876543.21)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ToWords(9876543.21))
	}
}

func TestToWordsPaiseRounding(t *testing.T) {
	// 0.675 carries to 68 paise rather than truncating.
	assert.Equal(t, "INR Sixty Eight Paise Only", ToWords(0.675))
	// A fraction that rounds up to a whole rupee must not produce 100 paise.
	assert.Equal(t, "INR Ten Only", ToWords(9.999))
}
