// Package money holds the numeric primitives shared by the billing engines:
// lenient parsing of user-entered amounts, nearest-unit rounding, and
// display formatting.
package money

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("en-IN"))

// ParseAmount interprets a user-supplied numeric string. Blank, missing or
// non-numeric input yields 0; absence of a valid number is never an error.
func ParseAmount(input string) float64 {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0
	}
	v, err := strconv.ParseFloat(input, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Sanitize clamps NaN, infinite and negative values to 0. Monetary inputs
// that cannot be interpreted degrade to zero rather than failing.
func Sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// RoundToUnit rounds to the nearest whole currency unit, half away from
// zero. The remainder is rounded minus amount, signed, in (-0.5, 0.5].
func RoundToUnit(amount float64) (rounded float64, remainder float64) {
	rounded = math.Round(amount)
	return rounded, rounded - amount
}

// Format renders an amount with two decimals and Indian digit grouping,
// e.g. 123456.7 -> "1,23,456.70".
func Format(amount float64) string {
	return printer.Sprint(number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2)))
}
