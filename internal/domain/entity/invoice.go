package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice document types.
const (
	TypeQuotation = "quotation"
	TypeInvoice   = "invoice"
)

// Invoice lifecycle states.
const (
	StatusDraft    = "draft"
	StatusSent     = "sent"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
	StatusPaid     = "paid"
)

// LineItem is one billable row within an invoice. Total is expected to equal
// Quantity * UnitPrice at save time but is stored as submitted.
type LineItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Duration    string          `json:"duration"` // free-text label ("3 months", "one-time")
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

// ClientInfo holds the free-text contact block of the billed party.
type ClientInfo struct {
	CompanyName string `json:"companyName"`
	AttentionTo string `json:"attentionTo"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	GSTNo       string `json:"gstNo"`
}

// Invoice is the full document: header, client block, line items and the totals
// computed client-side. Wire shape matches the SPA payload field for field.
type Invoice struct {
	ID              string          `json:"id"`
	Type            string          `json:"type"` // quotation | invoice
	ReferenceNumber string          `json:"referenceNumber"`
	Date            string          `json:"date"`         // ISO date string as sent by the SPA
	ValidityDate    string          `json:"validityDate"` // optional
	Subject         string          `json:"subject"`
	Description     string          `json:"description"`
	PreparedBy      string          `json:"preparedBy"`
	PreparedByEmail string          `json:"preparedByEmail"`
	Client          ClientInfo      `json:"client"`
	LineItems       []LineItem      `json:"lineItems"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	GSTRate         int             `json:"gstRate"` // integer percentage
	GSTAmount       decimal.Decimal `json:"gstAmount"`
	GrandTotal      decimal.Decimal `json:"grandTotal"`
	AdvancePayment  decimal.Decimal `json:"advancePayment"`
	BalanceDue      decimal.Decimal `json:"balanceDue"`
	AmountInWords   string          `json:"amountInWords"`
	PaymentTerms    string          `json:"paymentTerms"`
	DeliveryTerms   string          `json:"deliveryTerms"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// IsQuotation reports whether the document renders as a proposal rather than an invoice.
func (i *Invoice) IsQuotation() bool { return i.Type == TypeQuotation }

// DocType returns the human label used in PDF filenames and email subjects.
func (i *Invoice) DocType() string {
	if i.IsQuotation() {
		return "Quotation"
	}
	return "Invoice"
}
