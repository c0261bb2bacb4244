package repository

import "github.com/resonira/invoice-api/internal/domain/entity"

// SettingsRepository is the persistence port for the singleton company record.
type SettingsRepository interface {
	// Get returns the record, or a zero-value CompanyInfo when none exists yet.
	Get() (*entity.CompanyInfo, error)
	// Upsert creates the record on first write and updates it afterwards.
	// The store never holds more than one record.
	Upsert(info *entity.CompanyInfo) error
}
