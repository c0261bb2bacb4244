package repository

import "github.com/resonira/invoice-api/internal/domain/entity"

// UserRepository is the persistence port for accounts.
type UserRepository interface {
	// GetByID returns domain.ErrUserNotFound for an unknown id.
	GetByID(id string) (*entity.User, error)
	// GetByEmail matches case-insensitively; returns domain.ErrUserNotFound when absent.
	GetByEmail(email string) (*entity.User, error)
	Create(user *entity.User) error
	// Update returns domain.ErrUserNotFound for an unknown id.
	Update(user *entity.User) error
	// Count returns the number of accounts; used by startup seeding.
	Count() (int, error)
}
