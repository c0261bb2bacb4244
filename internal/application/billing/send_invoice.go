package billing

import (
	"context"
	"fmt"

	"github.com/resonira/invoice-api/internal/domain"
	"github.com/resonira/invoice-api/internal/domain/entity"
	"github.com/resonira/invoice-api/internal/domain/repository"
)

// SendInvoiceUseCase renders an invoice to PDF and delivers it: either attached
// to a transactional email or returned directly as download bytes.
type SendInvoiceUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	settingsRepo repository.SettingsRepository
	generator    InvoicePDFGenerator
	mailer       InvoiceMailer
}

// NewSendInvoiceUseCase builds the use case with its collaborators.
func NewSendInvoiceUseCase(
	invoiceRepo repository.InvoiceRepository,
	settingsRepo repository.SettingsRepository,
	generator InvoicePDFGenerator,
	mailer InvoiceMailer,
) *SendInvoiceUseCase {
	return &SendInvoiceUseCase{
		invoiceRepo:  invoiceRepo,
		settingsRepo: settingsRepo,
		generator:    generator,
		mailer:       mailer,
	}
}

// Send loads a stored invoice, renders it with the current company settings and
// emails it. Failures propagate immediately; there are no retries.
func (uc *SendInvoiceUseCase) Send(ctx context.Context, invoiceID, recipient string) error {
	if recipient == "" {
		return fmt.Errorf("%w: recipient email is required", domain.ErrInvalidInput)
	}
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return err
	}
	pdf, err := uc.render(ctx, inv)
	if err != nil {
		return err
	}
	return uc.mailer.SendInvoice(ctx, inv, recipient, pdf)
}

// SendDirect renders a body-supplied invoice without any persistence lookup and
// emails it to the recipient.
func (uc *SendInvoiceUseCase) SendDirect(ctx context.Context, inv *entity.Invoice, recipient string) error {
	if inv == nil {
		return fmt.Errorf("%w: invoice data is required", domain.ErrInvalidInput)
	}
	if recipient == "" {
		return fmt.Errorf("%w: recipient email is required", domain.ErrInvalidInput)
	}
	pdf, err := uc.render(ctx, inv)
	if err != nil {
		return err
	}
	return uc.mailer.SendInvoice(ctx, inv, recipient, pdf)
}

// RenderDirect renders a body-supplied invoice and returns the PDF bytes for download.
func (uc *SendInvoiceUseCase) RenderDirect(ctx context.Context, inv *entity.Invoice) ([]byte, error) {
	if inv == nil {
		return nil, fmt.Errorf("%w: invoice data is required", domain.ErrInvalidInput)
	}
	return uc.render(ctx, inv)
}

// EmailStatus reports whether the relay is reachable and authenticated, without
// sending mail.
func (uc *SendInvoiceUseCase) EmailStatus(ctx context.Context) (configured bool, detail string) {
	if !uc.mailer.Configured() {
		return false, domain.ErrMailNotConfigured.Error()
	}
	if err := uc.mailer.Verify(ctx); err != nil {
		return false, err.Error()
	}
	return true, ""
}

func (uc *SendInvoiceUseCase) render(ctx context.Context, inv *entity.Invoice) ([]byte, error) {
	company, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateInvoicePDF(ctx, inv, company)
}
