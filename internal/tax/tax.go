// Package tax computes the GST breakdown for a sales document: subtotal,
// taxable value, intra/inter-state split, rounded grand total and the
// signed round-off.
package tax

import (
	"strings"

	"github.com/ledgerline/ledgerline/internal/money"
)

// DefaultRatePercent is the flat document tax rate applied when the caller
// does not supply one.
const DefaultRatePercent = 18.0

// Line is a single document line. Amount is always derived as quantity
// times rate; stored amounts are display copies, never calculation inputs.
type Line struct {
	Quantity float64
	Rate     float64
}

// Result is the complete tax breakdown for one document.
type Result struct {
	Subtotal      float64 `json:"subtotal"`
	Freight       float64 `json:"freight"`
	TaxableValue  float64 `json:"taxableValue"`
	RatePercent   float64 `json:"ratePercent"`
	IntraState    bool    `json:"intraState"`
	CGST          float64 `json:"cgst"`
	SGST          float64 `json:"sgst"`
	IGST          float64 `json:"igst"`
	TotalTax      float64 `json:"totalTax"`
	GrandTotal    float64 `json:"grandTotal"`
	RoundOff      float64 `json:"roundOff"`
	TotalQuantity float64 `json:"totalQuantity"`
}

// IntraState reports whether the company and counterparty share a state,
// comparing codes case-insensitively after trimming. When either code is
// missing the transaction is treated as inter-state; absent jurisdiction
// data must never zero the tax out.
func IntraState(companyStateCode, partyStateCode string) bool {
	company := strings.TrimSpace(companyStateCode)
	party := strings.TrimSpace(partyStateCode)
	if company == "" || party == "" {
		return false
	}
	return strings.EqualFold(company, party)
}

// Compute derives the tax breakdown for a set of lines. Freight is folded
// into the taxable base rather than taxed separately. The function is pure
// and never fails: invalid or negative numeric inputs degrade to zero.
//
// Invariants: TaxableValue = Subtotal + Freight; CGST + SGST = TotalTax on
// the intra-state branch and IGST = TotalTax otherwise; and GrandTotal =
// TaxableValue + TotalTax + RoundOff exactly, by construction of RoundOff.
func Compute(lines []Line, freight float64, companyStateCode, partyStateCode string, ratePercent float64) Result {
	if ratePercent <= 0 {
		ratePercent = DefaultRatePercent
	}

	var subtotal, totalQty float64
	for _, line := range lines {
		qty := money.Sanitize(line.Quantity)
		rate := money.Sanitize(line.Rate)
		subtotal += qty * rate
		totalQty += qty
	}

	freight = money.Sanitize(freight)
	taxable := subtotal + freight
	totalTax := taxable * ratePercent / 100

	result := Result{
		Subtotal:      subtotal,
		Freight:       freight,
		TaxableValue:  taxable,
		RatePercent:   ratePercent,
		TotalTax:      totalTax,
		TotalQuantity: totalQty,
	}

	if IntraState(companyStateCode, partyStateCode) {
		result.IntraState = true
		result.CGST = totalTax / 2
		result.SGST = totalTax / 2
	} else {
		result.IGST = totalTax
	}

	result.GrandTotal, result.RoundOff = money.RoundToUnit(taxable + totalTax)
	return result
}

// LineAmount is the derived amount for one line, with the same leniency as
// Compute.
func LineAmount(line Line) float64 {
	return money.Sanitize(line.Quantity) * money.Sanitize(line.Rate)
}
