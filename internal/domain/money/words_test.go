package money_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/resonira/invoice-api/internal/domain/money"
)

// ──────────────────────────────────────────────────────────────────────────────
// AmountInWords — Indian-English grouping
// ──────────────────────────────────────────────────────────────────────────────

func TestAmountInWords_Zero(t *testing.T) {
	assert.Equal(t, "Zero Rupees Only", money.AmountInWords(decimal.Zero))
}

func TestAmountInWords_OneLakh(t *testing.T) {
	assert.Equal(t, "One Lakh Rupees Only",
		money.AmountInWords(decimal.NewFromInt(100_000)))
}

func TestAmountInWords_FullGrouping(t *testing.T) {
	got := money.AmountInWords(decimal.NewFromFloat(1_234_567.89))
	assert.Equal(t,
		"Twelve Lakh Thirty Four Thousand Five Hundred and Sixty Seven Rupees and Eighty Nine Paise Only",
		got)
}

func TestAmountInWords_Crore(t *testing.T) {
	got := money.AmountInWords(decimal.NewFromInt(10_000_000))
	assert.Equal(t, "One Crore Rupees Only", got)
}

func TestAmountInWords_HundredUsesAndBeforeRemainder(t *testing.T) {
	// "and" joins the sub-hundred remainder to a preceding group.
	assert.Equal(t, "One Hundred and Five Rupees Only",
		money.AmountInWords(decimal.NewFromInt(105)))
	assert.Equal(t, "Nineteen Rupees Only",
		money.AmountInWords(decimal.NewFromInt(19)))
	assert.Equal(t, "Twenty One Rupees Only",
		money.AmountInWords(decimal.NewFromInt(21)))
}

func TestAmountInWords_PaiseOnlyWhenFractional(t *testing.T) {
	withPaise := money.AmountInWords(decimal.NewFromFloat(1.50))
	assert.Equal(t, "One Rupees and Fifty Paise Only", withPaise)

	wholeRupees := money.AmountInWords(decimal.NewFromInt(42))
	assert.NotContains(t, wholeRupees, "Paise")
}

func TestAmountInWords_PaiseRoundingCarriesIntoRupee(t *testing.T) {
	// 0.999 rounds to 100 paise, which must carry into the next rupee.
	got := money.AmountInWords(decimal.NewFromFloat(1.999))
	assert.Equal(t, "Two Rupees Only", got)
}

func TestAmountInWords_NegativePrefixedWithMinus(t *testing.T) {
	got := money.AmountInWords(decimal.NewFromInt(-500))
	assert.True(t, strings.HasPrefix(got, "Minus "),
		"negative amounts must carry the Minus prefix")
	assert.Equal(t, "Minus Five Hundred Rupees Only", got)
}

func TestAmountInWords_AlwaysEndsWithOnly(t *testing.T) {
	for _, amount := range []float64{0, 1, 99.99, 100_000, 1_234_567.89, 99_999_999} {
		got := money.AmountInWords(decimal.NewFromFloat(amount))
		assert.True(t, strings.HasSuffix(got, " Only"),
			"words for %v must end with Only, got %q", amount, got)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// FormatINR — en-IN digit grouping
// ──────────────────────────────────────────────────────────────────────────────

func TestFormatINR_IndianGrouping(t *testing.T) {
	cases := map[float64]string{
		0:            "0.00",
		999:          "999.00",
		1_234:        "1,234.00",
		12_345:       "12,345.00",
		123_456:      "1,23,456.00",
		1_234_567.89: "12,34,567.89",
		12_345_678:   "1,23,45,678.00",
	}
	for amount, want := range cases {
		assert.Equal(t, want, money.FormatINR(decimal.NewFromFloat(amount)),
			"grouping for %v", amount)
	}
}

func TestFormatINR_Negative(t *testing.T) {
	assert.Equal(t, "-12,34,567.89", money.FormatINR(decimal.NewFromFloat(-1_234_567.89)))
}
