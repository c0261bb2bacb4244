package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/resonira/invoice-api/internal/domain/entity"
	"github.com/resonira/invoice-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implements SettingsRepository over a single-row table. The row
// is pinned to id = 1 and upserts overwrite it in place.
type SettingsRepo struct {
	pool *pgxpool.Pool
}

// NewSettingsRepository builds the adapter.
func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepo {
	return &SettingsRepo{pool: pool}
}

// Get returns the company record, or a zero value when none has been saved yet.
func (r *SettingsRepo) Get() (*entity.CompanyInfo, error) {
	query := `
		SELECT name, gstin, state, state_code, pan, sales_phone, support_phone,
		       email, address, logo, updated_at
		FROM settings WHERE id = 1`
	var info entity.CompanyInfo
	err := r.pool.QueryRow(context.Background(), query).Scan(
		&info.Name, &info.GSTIN, &info.State, &info.StateCode, &info.PAN,
		&info.SalesPhone, &info.SupportPhone, &info.Email, &info.Address,
		&info.Logo, &info.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.CompanyInfo{}, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &info, nil
}

// Upsert writes the singleton row, creating it on first save.
func (r *SettingsRepo) Upsert(info *entity.CompanyInfo) error {
	query := `
		INSERT INTO settings (id, name, gstin, state, state_code, pan, sales_phone,
		                      support_phone, email, address, logo, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, gstin = EXCLUDED.gstin, state = EXCLUDED.state,
			state_code = EXCLUDED.state_code, pan = EXCLUDED.pan,
			sales_phone = EXCLUDED.sales_phone, support_phone = EXCLUDED.support_phone,
			email = EXCLUDED.email, address = EXCLUDED.address, logo = EXCLUDED.logo,
			updated_at = EXCLUDED.updated_at`
	_, err := r.pool.Exec(context.Background(), query,
		info.Name, info.GSTIN, info.State, info.StateCode, info.PAN,
		info.SalesPhone, info.SupportPhone, info.Email, info.Address,
		info.Logo, info.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}
