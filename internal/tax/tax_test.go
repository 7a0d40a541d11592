package tax

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeIntraState(t *testing.T) {
	res := Compute([]Line{{Quantity: 2, Rate: 100}}, 0, "27", "27", 18)

	assert.Equal(t, 200.0, res.Subtotal)
	assert.Equal(t, 200.0, res.TaxableValue)
	assert.Equal(t, 36.0, res.TotalTax)
	assert.True(t, res.IntraState)
	assert.Equal(t, 18.0, res.CGST)
	assert.Equal(t, 18.0, res.SGST)
	assert.Equal(t, 0.0, res.IGST)
	assert.Equal(t, 236.0, res.GrandTotal)
	assert.Equal(t, 0.0, res.RoundOff)
	assert.Equal(t, 2.0, res.TotalQuantity)
}

func TestComputeInterState(t *testing.T) {
	res := Compute([]Line{{Quantity: 2, Rate: 100}}, 0, "27", "09", 18)

	assert.False(t, res.IntraState)
	assert.Equal(t, 36.0, res.IGST)
	assert.Equal(t, 0.0, res.CGST)
	assert.Equal(t, 0.0, res.SGST)
	assert.Equal(t, 236.0, res.GrandTotal)
}

func TestComputeRoundOff(t *testing.T) {
	// subtotal 150.40, 18% => tax 27.072, unrounded total 177.472.
	res := Compute([]Line{{Quantity: 1, Rate: 150.40}}, 0, "27", "09", 18)

	assert.InDelta(t, 27.072, res.TotalTax, 1e-9)
	assert.Equal(t, 177.0, res.GrandTotal)
	assert.InDelta(t, -0.472, res.RoundOff, 1e-9)
	// Grand total reconstructs exactly from its parts.
	assert.InDelta(t, res.GrandTotal, res.TaxableValue+res.TotalTax+res.RoundOff, 1e-9)
}

func TestComputeFreightFoldedIntoTaxableBase(t *testing.T) {
	res := Compute([]Line{{Quantity: 2, Rate: 100}}, 50, "27", "27", 18)

	assert.Equal(t, 200.0, res.Subtotal)
	assert.Equal(t, 250.0, res.TaxableValue)
	assert.Equal(t, 45.0, res.TotalTax)
	assert.Equal(t, 295.0, res.GrandTotal)
}

func TestComputeJurisdiction(t *testing.T) {
	cases := []struct {
		name    string
		company string
		party   string
		intra   bool
	}{
		{"same code", "27", "27", true},
		{"case insensitive", "mh", "MH", true},
		{"trimmed", " 27 ", "27", true},
		{"different", "27", "09", false},
		{"company missing", "", "27", false},
		{"party missing", "27", "", false},
		{"both missing", "", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.intra, IntraState(tc.company, tc.party))
		})
	}
}

func TestComputeSplitMatchesUnsplit(t *testing.T) {
	lines := []Line{{Quantity: 3, Rate: 99.99}, {Quantity: 0.5, Rate: 1200}}

	intra := Compute(lines, 75.5, "27", "27", 18)
	inter := Compute(lines, 75.5, "27", "09", 18)

	// Whichever branch is taken, the total tax is identical.
	assert.InDelta(t, intra.TotalTax, inter.TotalTax, 1e-9)
	assert.InDelta(t, intra.CGST+intra.SGST, inter.IGST, 1e-9)
	assert.Equal(t, intra.GrandTotal, inter.GrandTotal)
}

func TestComputeLenientInputs(t *testing.T) {
	res := Compute([]Line{
		{Quantity: math.NaN(), Rate: 100},
		{Quantity: 2, Rate: -50},
		{Quantity: 4, Rate: 25},
	}, math.Inf(1), "", "", 0)

	require.Equal(t, 100.0, res.Subtotal)
	assert.Equal(t, 0.0, res.Freight)
	assert.Equal(t, DefaultRatePercent, res.RatePercent)
	// Unknown jurisdiction defaults to inter-state, never to zero tax.
	assert.False(t, res.IntraState)
	assert.Equal(t, 18.0, res.IGST)
	assert.Equal(t, 6.0, res.TotalQuantity)
}

func TestComputeEmptyDocument(t *testing.T) {
	res := Compute(nil, 0, "27", "27", 18)

	assert.Zero(t, res.Subtotal)
	assert.Zero(t, res.TotalTax)
	assert.Zero(t, res.GrandTotal)
	assert.Zero(t, res.RoundOff)
}

func TestLineAmount(t *testing.T) {
	assert.Equal(t, 250.0, LineAmount(Line{Quantity: 2.5, Rate: 100}))
	assert.Equal(t, 0.0, LineAmount(Line{Quantity: -1, Rate: 100}))
}
