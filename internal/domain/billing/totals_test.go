package billing_test

import (
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/resonira/invoice-api/internal/domain/billing"
	"github.com/resonira/invoice-api/internal/domain/entity"
)

func items(totals ...float64) []entity.LineItem {
	list := make([]entity.LineItem, 0, len(totals))
	for _, t := range totals {
		list = append(list, entity.LineItem{Total: decimal.NewFromFloat(t)})
	}
	return list
}

// ──────────────────────────────────────────────────────────────────────────────
// Arithmetic identities
// ──────────────────────────────────────────────────────────────────────────────

func TestLineTotal(t *testing.T) {
	got := billing.LineTotal(3, decimal.NewFromFloat(1500.50))
	assert.True(t, decimal.NewFromFloat(4501.50).Equal(got))
}

func TestSubtotal_SumsStoredTotals(t *testing.T) {
	got := billing.Subtotal(items(1000, 2500.25, 499.75))
	assert.True(t, decimal.NewFromInt(4000).Equal(got))
}

func TestSubtotal_EmptyIsZero(t *testing.T) {
	assert.True(t, billing.Subtotal(nil).IsZero())
}

func TestGSTAmount_IntegerRate(t *testing.T) {
	got := billing.GSTAmount(decimal.NewFromInt(1000), 18)
	assert.True(t, decimal.NewFromInt(180).Equal(got))
}

func TestGSTAmount_ZeroRate(t *testing.T) {
	assert.True(t, billing.GSTAmount(decimal.NewFromInt(1000), 0).IsZero())
}

func TestGrandTotal(t *testing.T) {
	got := billing.GrandTotal(decimal.NewFromInt(1000), decimal.NewFromInt(180))
	assert.True(t, decimal.NewFromInt(1180).Equal(got))
}

func TestBalanceDue_SubtractsAdvance(t *testing.T) {
	got := billing.BalanceDue(decimal.NewFromInt(1180), decimal.NewFromInt(500))
	assert.True(t, decimal.NewFromInt(680).Equal(got))
}

func TestBalanceDue_FlooredAtZero(t *testing.T) {
	// Advance larger than the grand total must not produce a negative balance.
	got := billing.BalanceDue(decimal.NewFromInt(1000), decimal.NewFromInt(1500))
	assert.True(t, got.IsZero())
}

func TestBalanceDue_FullAdvanceIsZero(t *testing.T) {
	got := billing.BalanceDue(decimal.NewFromInt(1180), decimal.NewFromInt(1180))
	assert.True(t, got.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Compute — the full derived set
// ──────────────────────────────────────────────────────────────────────────────

func TestCompute_DerivesAllTotals(t *testing.T) {
	got := billing.Compute(items(600, 400), 18, decimal.NewFromInt(180))

	assert.True(t, decimal.NewFromInt(1000).Equal(got.Subtotal))
	assert.True(t, decimal.NewFromInt(180).Equal(got.GSTAmount))
	assert.True(t, decimal.NewFromInt(1180).Equal(got.GrandTotal))
	assert.True(t, decimal.NewFromInt(1000).Equal(got.BalanceDue))
	assert.Equal(t, "One Thousand One Hundred and Eighty Rupees Only", got.AmountInWords)
}

func TestCompute_GrandTotalIdentity(t *testing.T) {
	got := billing.Compute(items(123.45, 678.90), 12, decimal.Zero)
	assert.True(t, got.Subtotal.Add(got.GSTAmount).Equal(got.GrandTotal),
		"grand total must equal subtotal + GST")
	assert.True(t, got.GrandTotal.Equal(got.BalanceDue),
		"with no advance the balance equals the grand total")
}

// ──────────────────────────────────────────────────────────────────────────────
// Reference numbers
// ──────────────────────────────────────────────────────────────────────────────

func TestNewReferenceNumber_Shape(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{4}-\d{4}$`)
	for i := 0; i < 50; i++ {
		ref := billing.NewReferenceNumber()
		assert.Regexp(t, pattern, ref)
	}
}
