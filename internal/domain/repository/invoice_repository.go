package repository

import "github.com/resonira/invoice-api/internal/domain/entity"

// InvoiceRepository is the persistence port for invoices. Both backends (PostgreSQL
// and the JSON flat-file store) implement it; callers never see which one is active.
type InvoiceRepository interface {
	// List returns all invoices ordered by creation time descending.
	List() ([]*entity.Invoice, error)
	// GetByID returns domain.ErrNotFound for an unknown id.
	GetByID(id string) (*entity.Invoice, error)
	Create(inv *entity.Invoice) error
	// Update replaces all mutable fields including the full line-item set.
	// Returns domain.ErrNotFound for an unknown id.
	Update(inv *entity.Invoice) error
	// Delete returns domain.ErrNotFound for an unknown id.
	Delete(id string) error
}
