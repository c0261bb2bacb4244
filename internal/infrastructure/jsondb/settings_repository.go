package jsondb

import (
	"github.com/resonira/invoice-api/internal/domain/entity"
	"github.com/resonira/invoice-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implements the singleton SettingsRepository over settings.json.
// On disk the record is normalized into a one-element array so files written by
// earlier deployments keep loading.
type SettingsRepo struct {
	store *Store
}

// NewSettingsRepository builds the adapter.
func NewSettingsRepository(store *Store) *SettingsRepo {
	return &SettingsRepo{store: store}
}

// Get returns the first (only) record, or a zero-value record when the file is
// empty or missing.
func (r *SettingsRepo) Get() (*entity.CompanyInfo, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var list []*entity.CompanyInfo
	if err := r.store.read(settingsFile, &list); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return &entity.CompanyInfo{}, nil
	}
	return list[0], nil
}

// Upsert writes the record as a one-element array regardless of what the file
// held before; a second record can never appear.
func (r *SettingsRepo) Upsert(info *entity.CompanyInfo) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.write(settingsFile, []*entity.CompanyInfo{info})
}
