package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/resonira/invoice-api/internal/domain"
	"github.com/resonira/invoice-api/internal/domain/entity"
	"github.com/resonira/invoice-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceColumns = `id, type, reference_number, date, validity_date, subject, description,
	prepared_by, prepared_by_email, client, gst_rate, subtotal, gst_amount, grand_total,
	advance_payment, balance_due, amount_in_words, payment_terms, delivery_terms, status,
	created_at, updated_at`

// InvoiceRepo implements InvoiceRepository over the invoices and line_items
// tables. The client contact block is stored as jsonb; line items live in a
// child table and are fully replaced on update inside one transaction.
type InvoiceRepo struct {
	pool *pgxpool.Pool
	tx   *TxRunner
}

// NewInvoiceRepository builds the adapter.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepo {
	return &InvoiceRepo{pool: pool, tx: NewTxRunner(pool)}
}

// List returns all invoices with their line items, newest first.
func (r *InvoiceRepo) List() ([]*entity.Invoice, error) {
	ctx := context.Background()
	query := `SELECT ` + invoiceColumns + ` FROM invoices ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, inv := range list {
		items, err := r.loadLineItems(ctx, r.pool, inv.ID)
		if err != nil {
			return nil, err
		}
		inv.LineItems = items
	}
	return list, nil
}

// GetByID loads one invoice and its line items.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	ctx := context.Background()
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	inv, err := scanInvoice(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	items, err := r.loadLineItems(ctx, r.pool, id)
	if err != nil {
		return nil, err
	}
	inv.LineItems = items
	return inv, nil
}

// Create persists the header and its line items in one transaction.
func (r *InvoiceRepo) Create(inv *entity.Invoice) error {
	ctx := context.Background()
	return r.tx.Run(ctx, func(q Querier) error {
		if err := insertHeader(ctx, q, inv); err != nil {
			return err
		}
		return insertLineItems(ctx, q, inv)
	})
}

// Update replaces the header fields and the full line-item set atomically:
// delete old rows, insert the new ones, update the header, commit together.
func (r *InvoiceRepo) Update(inv *entity.Invoice) error {
	ctx := context.Background()
	return r.tx.Run(ctx, func(q Querier) error {
		client, err := json.Marshal(inv.Client)
		if err != nil {
			return fmt.Errorf("encode client: %w", err)
		}
		query := `
			UPDATE invoices
			SET type = $2, reference_number = $3, date = $4, validity_date = $5, subject = $6,
			    description = $7, prepared_by = $8, prepared_by_email = $9, client = $10,
			    gst_rate = $11, subtotal = $12, gst_amount = $13, grand_total = $14,
			    advance_payment = $15, balance_due = $16, amount_in_words = $17,
			    payment_terms = $18, delivery_terms = $19, status = $20, updated_at = $21
			WHERE id = $1`
		tag, err := q.Exec(ctx, query,
			inv.ID, inv.Type, inv.ReferenceNumber, inv.Date, inv.ValidityDate, inv.Subject,
			inv.Description, inv.PreparedBy, inv.PreparedByEmail, client,
			inv.GSTRate, inv.Subtotal, inv.GSTAmount, inv.GrandTotal,
			inv.AdvancePayment, inv.BalanceDue, inv.AmountInWords,
			inv.PaymentTerms, inv.DeliveryTerms, inv.Status, inv.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("update invoice: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		if _, err := q.Exec(ctx, `DELETE FROM line_items WHERE invoice_id = $1`, inv.ID); err != nil {
			return fmt.Errorf("delete line items: %w", err)
		}
		return insertLineItems(ctx, q, inv)
	})
}

// Delete removes the invoice; line items cascade.
func (r *InvoiceRepo) Delete(id string) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func insertHeader(ctx context.Context, q Querier, inv *entity.Invoice) error {
	client, err := json.Marshal(inv.Client)
	if err != nil {
		return fmt.Errorf("encode client: %w", err)
	}
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err = q.Exec(ctx, query,
		inv.ID, inv.Type, inv.ReferenceNumber, inv.Date, inv.ValidityDate, inv.Subject,
		inv.Description, inv.PreparedBy, inv.PreparedByEmail, client,
		inv.GSTRate, inv.Subtotal, inv.GSTAmount, inv.GrandTotal,
		inv.AdvancePayment, inv.BalanceDue, inv.AmountInWords,
		inv.PaymentTerms, inv.DeliveryTerms, inv.Status, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("invoice id already exists: %w", err)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

func insertLineItems(ctx context.Context, q Querier, inv *entity.Invoice) error {
	query := `
		INSERT INTO line_items (id, invoice_id, position, description, duration, quantity, unit_price, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for i, item := range inv.LineItems {
		if _, err := q.Exec(ctx, query,
			item.ID, inv.ID, i, item.Description, item.Duration,
			item.Quantity, item.UnitPrice, item.Total,
		); err != nil {
			return fmt.Errorf("insert line item: %w", err)
		}
	}
	return nil
}

func (r *InvoiceRepo) loadLineItems(ctx context.Context, q Querier, invoiceID string) ([]entity.LineItem, error) {
	query := `
		SELECT id, description, duration, quantity, unit_price, total
		FROM line_items WHERE invoice_id = $1 ORDER BY position`
	rows, err := q.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list line items: %w", err)
	}
	defer rows.Close()
	items := []entity.LineItem{}
	for rows.Next() {
		var it entity.LineItem
		if err := rows.Scan(&it.ID, &it.Description, &it.Duration, &it.Quantity, &it.UnitPrice, &it.Total); err != nil {
			return nil, fmt.Errorf("scan line item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// scanInvoice reads one header row; the jsonb client column is decoded manually.
func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	var client []byte
	err := row.Scan(
		&inv.ID, &inv.Type, &inv.ReferenceNumber, &inv.Date, &inv.ValidityDate, &inv.Subject,
		&inv.Description, &inv.PreparedBy, &inv.PreparedByEmail, &client,
		&inv.GSTRate, &inv.Subtotal, &inv.GSTAmount, &inv.GrandTotal,
		&inv.AdvancePayment, &inv.BalanceDue, &inv.AmountInWords,
		&inv.PaymentTerms, &inv.DeliveryTerms, &inv.Status, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(client) > 0 {
		if err := json.Unmarshal(client, &inv.Client); err != nil {
			return nil, fmt.Errorf("decode client: %w", err)
		}
	}
	return &inv, nil
}
