package billing

import (
	"context"

	"github.com/resonira/invoice-api/internal/domain/entity"
)

// InvoicePDFGenerator renders an invoice plus the issuer record into PDF bytes.
// The generator consumes the totals already present on the invoice; it never
// recomputes them. Any rendering error aborts with no partial document.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, inv *entity.Invoice, company *entity.CompanyInfo) ([]byte, error)
}

// InvoiceMailer delivers a rendered document to a recipient over SMTP.
type InvoiceMailer interface {
	// SendInvoice fails fast when the relay is unconfigured or rejects the send.
	SendInvoice(ctx context.Context, inv *entity.Invoice, recipient string, pdf []byte) error
	// Verify dials and authenticates against the relay without sending mail.
	Verify(ctx context.Context) error
	// Configured reports whether relay credentials are present at all.
	Configured() bool
}
