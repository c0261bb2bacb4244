package billing

import (
	"time"

	"github.com/google/uuid"

	"github.com/resonira/invoice-api/internal/domain"
	domainbilling "github.com/resonira/invoice-api/internal/domain/billing"
	"github.com/resonira/invoice-api/internal/domain/entity"
	"github.com/resonira/invoice-api/internal/domain/money"
	"github.com/resonira/invoice-api/internal/domain/repository"
)

// InvoiceUseCase invoice CRUD over whichever storage backend was selected at startup.
type InvoiceUseCase struct {
	repo repository.InvoiceRepository
}

// NewInvoiceUseCase builds the use case.
func NewInvoiceUseCase(repo repository.InvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo}
}

// List returns all invoices, newest first.
func (uc *InvoiceUseCase) List() ([]*entity.Invoice, error) {
	return uc.repo.List()
}

// Get returns one invoice or domain.ErrNotFound.
func (uc *InvoiceUseCase) Get(id string) (*entity.Invoice, error) {
	return uc.repo.GetByID(id)
}

// Create persists a new invoice. Submitted fields are stored as-is; only the
// identity and bookkeeping fields the SPA may omit are filled in server-side.
func (uc *InvoiceUseCase) Create(inv *entity.Invoice) error {
	if inv == nil {
		return domain.ErrInvalidInput
	}
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	if inv.ReferenceNumber == "" {
		inv.ReferenceNumber = domainbilling.NewReferenceNumber()
	}
	if inv.Type == "" {
		inv.Type = entity.TypeInvoice
	}
	if inv.Status == "" {
		inv.Status = entity.StatusDraft
	}
	// The renderer requires the words banner; derive it when the client sent none.
	if inv.AmountInWords == "" {
		inv.AmountInWords = money.AmountInWords(inv.GrandTotal)
	}
	now := time.Now().UTC()
	inv.CreatedAt = now
	inv.UpdatedAt = now
	return uc.repo.Create(inv)
}

// Update fully replaces the mutable fields of an existing invoice, line items
// included. ID and CreatedAt are preserved from the stored record.
func (uc *InvoiceUseCase) Update(id string, inv *entity.Invoice) error {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	inv.ID = existing.ID
	inv.CreatedAt = existing.CreatedAt
	inv.UpdatedAt = time.Now().UTC()
	if inv.AmountInWords == "" {
		inv.AmountInWords = money.AmountInWords(inv.GrandTotal)
	}
	return uc.repo.Update(inv)
}

// Delete removes an invoice, returning domain.ErrNotFound for unknown ids.
func (uc *InvoiceUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}
