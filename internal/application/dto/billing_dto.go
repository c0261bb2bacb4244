package dto

import "github.com/resonira/invoice-api/internal/domain/entity"

// SendInvoiceRequest body for POST /api/invoices/:id/send. When Invoice is set
// it overrides the stored record (unsaved edits from the form).
type SendInvoiceRequest struct {
	RecipientEmail string          `json:"recipientEmail"`
	Invoice        *entity.Invoice `json:"invoice,omitempty"`
}

// SendDirectRequest body for POST /api/invoices/send-direct: the invoice travels
// in the request, nothing is looked up. Download short-circuits the email send
// and returns the PDF bytes instead.
type SendDirectRequest struct {
	Invoice        *entity.Invoice `json:"invoice"`
	RecipientEmail string          `json:"recipientEmail"`
	Download       bool            `json:"download"`
}

// EmailStatusResponse relay configuration check result.
type EmailStatusResponse struct {
	Configured bool   `json:"configured"`
	Error      string `json:"error,omitempty"`
}
