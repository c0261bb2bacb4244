// Package settings exposes the singleton company record: read it, upsert it,
// seed it on first boot.
package settings

import (
	"time"

	"github.com/resonira/invoice-api/internal/domain/entity"
	"github.com/resonira/invoice-api/internal/domain/repository"
)

// UseCase settings read/upsert.
type UseCase struct {
	repo repository.SettingsRepository
}

// NewUseCase builds the use case.
func NewUseCase(repo repository.SettingsRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Get returns the company record; a zero-value record when none exists yet.
func (uc *UseCase) Get() (*entity.CompanyInfo, error) {
	return uc.repo.Get()
}

// Update upserts the singleton: first write creates it, later writes replace it.
// The store never ends up with a second record.
func (uc *UseCase) Update(info *entity.CompanyInfo) error {
	info.UpdatedAt = time.Now().UTC()
	return uc.repo.Upsert(info)
}

// EnsureDefaults seeds the issuer record on an empty store so freshly deployed
// instances render documents with a sensible header. Returns true when seeded.
func (uc *UseCase) EnsureDefaults() (bool, error) {
	current, err := uc.repo.Get()
	if err != nil {
		return false, err
	}
	if current.Name != "" {
		return false, nil
	}
	return true, uc.Update(&entity.CompanyInfo{
		Name:       "RESONIRA TECHNOLOGIES",
		GSTIN:      "36ABMFR2520B1ZJ",
		State:      "Telangana",
		StateCode:  "36",
		PAN:        "ABMFR2520B",
		SalesPhone: "+919154289324",
		Email:      "info@resonira.com",
		Address:    "Telangana, India",
	})
}
