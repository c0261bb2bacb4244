package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// One DDL statement per entry: pgx's extended protocol does not accept
// multi-statement strings.
var schema = []string{`
CREATE TABLE IF NOT EXISTS invoices (
	id                TEXT PRIMARY KEY,
	type              TEXT NOT NULL DEFAULT 'invoice',
	reference_number  TEXT NOT NULL DEFAULT '',
	date              TEXT NOT NULL DEFAULT '',
	validity_date     TEXT NOT NULL DEFAULT '',
	subject           TEXT NOT NULL DEFAULT '',
	description       TEXT NOT NULL DEFAULT '',
	prepared_by       TEXT NOT NULL DEFAULT '',
	prepared_by_email TEXT NOT NULL DEFAULT '',
	client            JSONB NOT NULL DEFAULT '{}',
	gst_rate          NUMERIC(8,4)  NOT NULL DEFAULT 0,
	subtotal          NUMERIC(14,2) NOT NULL DEFAULT 0,
	gst_amount        NUMERIC(14,2) NOT NULL DEFAULT 0,
	grand_total       NUMERIC(14,2) NOT NULL DEFAULT 0,
	advance_payment   NUMERIC(14,2) NOT NULL DEFAULT 0,
	balance_due       NUMERIC(14,2) NOT NULL DEFAULT 0,
	amount_in_words   TEXT NOT NULL DEFAULT '',
	payment_terms     TEXT NOT NULL DEFAULT '',
	delivery_terms    TEXT NOT NULL DEFAULT '',
	status            TEXT NOT NULL DEFAULT 'draft',
	created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
)`, `
CREATE TABLE IF NOT EXISTS line_items (
	id          TEXT NOT NULL,
	invoice_id  TEXT NOT NULL REFERENCES invoices(id) ON DELETE CASCADE,
	position    INT  NOT NULL DEFAULT 0,
	description TEXT NOT NULL DEFAULT '',
	duration    TEXT NOT NULL DEFAULT '',
	quantity    INT  NOT NULL DEFAULT 0,
	unit_price  NUMERIC(14,2) NOT NULL DEFAULT 0,
	total       NUMERIC(14,2) NOT NULL DEFAULT 0,
	PRIMARY KEY (invoice_id, id)
)`, `
CREATE INDEX IF NOT EXISTS idx_invoices_created_at ON invoices (created_at DESC)`, `
CREATE TABLE IF NOT EXISTS settings (
	id            INT PRIMARY KEY CHECK (id = 1),
	name          TEXT NOT NULL DEFAULT '',
	gstin         TEXT NOT NULL DEFAULT '',
	state         TEXT NOT NULL DEFAULT '',
	state_code    TEXT NOT NULL DEFAULT '',
	pan           TEXT NOT NULL DEFAULT '',
	sales_phone   TEXT NOT NULL DEFAULT '',
	support_phone TEXT NOT NULL DEFAULT '',
	email         TEXT NOT NULL DEFAULT '',
	address       TEXT NOT NULL DEFAULT '',
	logo          TEXT NOT NULL DEFAULT '',
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
)`, `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	email         TEXT NOT NULL,
	name          TEXT NOT NULL DEFAULT '',
	password_hash TEXT NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
)`, `
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_lower ON users (LOWER(email))`,
}

// EnsureSchema creates the tables on first run so the relational backend works
// against an empty database, same as the flat-file backend does with an empty
// data directory.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
