// Package billing holds the invoice arithmetic: pure decimal functions deriving
// subtotal, GST, grand total and balance due from the line items.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/resonira/invoice-api/internal/domain/entity"
	"github.com/resonira/invoice-api/internal/domain/money"
)

var oneHundred = decimal.NewFromInt(100)

// LineTotal computes quantity * unitPrice for a single row.
func LineTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// Subtotal sums the stored line totals in input order. Order does not affect the
// sum but is preserved everywhere else for display.
func Subtotal(items []entity.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Total)
	}
	return sum
}

// GSTAmount applies an integer percentage rate to the subtotal.
func GSTAmount(subtotal decimal.Decimal, rate int) decimal.Decimal {
	return subtotal.Mul(decimal.NewFromInt(int64(rate))).Div(oneHundred)
}

// GrandTotal is subtotal plus tax.
func GrandTotal(subtotal, gstAmount decimal.Decimal) decimal.Decimal {
	return subtotal.Add(gstAmount)
}

// BalanceDue is the grand total minus the advance already collected, floored at zero.
func BalanceDue(grandTotal, advancePayment decimal.Decimal) decimal.Decimal {
	due := grandTotal.Sub(advancePayment)
	if due.IsNegative() {
		return decimal.Zero
	}
	return due
}

// Totals is the full derived set for one invoice.
type Totals struct {
	Subtotal      decimal.Decimal
	GSTAmount     decimal.Decimal
	GrandTotal    decimal.Decimal
	BalanceDue    decimal.Decimal
	AmountInWords string
}

// Compute derives all totals from the line items, GST rate and advance payment.
func Compute(items []entity.LineItem, gstRate int, advancePayment decimal.Decimal) Totals {
	subtotal := Subtotal(items)
	gst := GSTAmount(subtotal, gstRate)
	grand := GrandTotal(subtotal, gst)
	return Totals{
		Subtotal:      subtotal,
		GSTAmount:     gst,
		GrandTotal:    grand,
		BalanceDue:    BalanceDue(grand, advancePayment),
		AmountInWords: money.AmountInWords(grand),
	}
}
