// Package words converts rupee amounts into their Indian-numbering-system
// spelling ("INR Two Hundred and Thirty Six Only") for printed documents.
package words

import (
	"math"
	"strings"
)

var ones = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}

var teens = []string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}

var tens = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}

// scales are processed from largest to smallest; the quotient recurses on
// convert and the non-zero remainder is appended with the scale's connector.
var scales = []struct {
	divisor   int64
	name      string
	connector string
}{
	{10000000, "Crore", " "},
	{100000, "Lakh", " "},
	{1000, "Thousand", " "},
	{100, "Hundred", " and "},
}

func convert(n int64) string {
	switch {
	case n < 10:
		return ones[n]
	case n < 20:
		return teens[n-10]
	case n < 100:
		s := tens[n/10]
		if n%10 != 0 {
			s += " " + ones[n%10]
		}
		return s
	}
	for _, scale := range scales {
		if n < scale.divisor {
			continue
		}
		s := convert(n/scale.divisor) + " " + scale.name
		if rem := n % scale.divisor; rem != 0 {
			s += scale.connector + convert(rem)
		}
		return s
	}
	return ""
}

// ToWords spells out a non-negative amount. The fractional part is read as
// paise from the first two decimal digits. A zero amount reads "Zero";
// amounts below one rupee omit the rupee portion entirely.
func ToWords(amount float64) string {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}

	total := int64(math.Round(amount * 100))
	rupees := total / 100
	paise := total % 100

	var parts []string
	if rupees > 0 {
		parts = append(parts, convert(rupees))
	}
	if paise > 0 {
		if rupees > 0 {
			parts = append(parts, "and", convert(paise), "Paise")
		} else {
			parts = append(parts, convert(paise), "Paise")
		}
	}
	if len(parts) == 0 {
		parts = append(parts, "Zero")
	}

	return "INR " + strings.Join(parts, " ") + " Only"
}
