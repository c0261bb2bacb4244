package jsondb

import (
	"sort"

	"github.com/resonira/invoice-api/internal/domain"
	"github.com/resonira/invoice-api/internal/domain/entity"
	"github.com/resonira/invoice-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implements InvoiceRepository over the invoices.json array file.
type InvoiceRepo struct {
	store *Store
}

// NewInvoiceRepository builds the adapter.
func NewInvoiceRepository(store *Store) *InvoiceRepo {
	return &InvoiceRepo{store: store}
}

func (r *InvoiceRepo) load() ([]*entity.Invoice, error) {
	var list []*entity.Invoice
	if err := r.store.read(invoicesFile, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// List returns all invoices sorted by creation time descending.
func (r *InvoiceRepo) List() ([]*entity.Invoice, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	list, err := r.load()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

// GetByID scans for the invoice, returning domain.ErrNotFound when absent.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	list, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, inv := range list {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create appends the invoice and rewrites the file.
func (r *InvoiceRepo) Create(inv *entity.Invoice) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	list, err := r.load()
	if err != nil {
		return err
	}
	list = append(list, inv)
	return r.store.write(invoicesFile, list)
}

// Update replaces the matching record in place, line items included.
func (r *InvoiceRepo) Update(inv *entity.Invoice) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	list, err := r.load()
	if err != nil {
		return err
	}
	for i, existing := range list {
		if existing.ID == inv.ID {
			list[i] = inv
			return r.store.write(invoicesFile, list)
		}
	}
	return domain.ErrNotFound
}

// Delete removes the record, erroring on unknown ids.
func (r *InvoiceRepo) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	list, err := r.load()
	if err != nil {
		return err
	}
	filtered := list[:0]
	for _, inv := range list {
		if inv.ID != id {
			filtered = append(filtered, inv)
		}
	}
	if len(filtered) == len(list) {
		return domain.ErrNotFound
	}
	return r.store.write(invoicesFile, filtered)
}
