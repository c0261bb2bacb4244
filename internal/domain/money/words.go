// Package money holds the pure amount formatting helpers shared by the PDF
// renderer, the email dispatcher and the invoice use cases: the Indian-English
// amount-in-words converter and the en-IN digit-grouping formatter.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Lookup tables for the sub-hundred groups.
var (
	ones = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten",
		"Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}
	tens = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
)

// Indian numbering magnitudes.
const (
	crore    = 10_000_000
	lakh     = 100_000
	thousand = 1_000
	hundred  = 100
)

// AmountInWords converts a rupee amount into its Indian-English words form:
// crore/lakh/thousand/hundred grouping, "Rupees", an "and N Paise" clause when
// the fractional part is non-zero, terminated by "Only".
//
//	AmountInWords(0)          = "Zero Rupees Only"
//	AmountInWords(100000)     = "One Lakh Rupees Only"
//	AmountInWords(1234567.89) = "Twelve Lakh Thirty Four Thousand Five Hundred and
//	                             Sixty Seven Rupees and Eighty Nine Paise Only"
//
// Negative amounts are prefixed with "Minus".
func AmountInWords(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	a := amount.Abs()

	rupees := a.IntPart()
	paise := a.Sub(decimal.NewFromInt(rupees)).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if paise >= 100 { // rounding carried into the next rupee
		rupees++
		paise = 0
	}

	var b strings.Builder
	if negative {
		b.WriteString("Minus ")
	}
	b.WriteString(groupWords(rupees))
	b.WriteString(" Rupees")
	if paise > 0 {
		b.WriteString(" and ")
		b.WriteString(groupWords(paise))
		b.WriteString(" Paise")
	}
	b.WriteString(" Only")
	return b.String()
}

// groupWords renders a non-negative integer by peeling off the highest
// applicable magnitude group and recursing, joining with "and" only before the
// final sub-hundred remainder when a higher group was already emitted.
func groupWords(n int64) string {
	if n == 0 {
		return "Zero"
	}

	var words string

	if n/crore > 0 {
		words += groupWords(n/crore) + " Crore "
		n %= crore
	}
	if n/lakh > 0 {
		words += groupWords(n/lakh) + " Lakh "
		n %= lakh
	}
	if n/thousand > 0 {
		words += groupWords(n/thousand) + " Thousand "
		n %= thousand
	}
	if n/hundred > 0 {
		words += groupWords(n/hundred) + " Hundred "
		n %= hundred
	}

	if n > 0 {
		if words != "" {
			words += "and "
		}
		if n < 20 {
			words += ones[n]
		} else {
			words += tens[n/10]
			if n%10 > 0 {
				words += " " + ones[n%10]
			}
		}
	}

	return strings.TrimSpace(words)
}
