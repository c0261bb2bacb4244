package jsondb

import (
	"strings"
	"time"

	"github.com/resonira/invoice-api/internal/domain"
	"github.com/resonira/invoice-api/internal/domain/entity"
	"github.com/resonira/invoice-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// storedUser is the on-disk user shape. The entity hides the hash from JSON
// serialization, so the file format needs its own struct.
type storedUser struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"passwordHash"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserRepo implements UserRepository over users.json.
type UserRepo struct {
	store *Store
}

// NewUserRepository builds the adapter.
func NewUserRepository(store *Store) *UserRepo {
	return &UserRepo{store: store}
}

func (r *UserRepo) load() ([]*entity.User, error) {
	var raw []storedUser
	if err := r.store.read(usersFile, &raw); err != nil {
		return nil, err
	}
	list := make([]*entity.User, 0, len(raw))
	for _, u := range raw {
		list = append(list, fromStored(u))
	}
	return list, nil
}

func (r *UserRepo) save(list []*entity.User) error {
	raw := make([]storedUser, 0, len(list))
	for _, u := range list {
		raw = append(raw, toStored(u))
	}
	return r.store.write(usersFile, raw)
}

// GetByID scans for the account, returning domain.ErrUserNotFound when absent.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	list, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, u := range list {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// GetByEmail matches case-insensitively.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	list, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, u := range list {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Create appends the account.
func (r *UserRepo) Create(user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	list, err := r.load()
	if err != nil {
		return err
	}
	for _, u := range list {
		if strings.EqualFold(u.Email, user.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	list = append(list, user)
	return r.save(list)
}

// Update replaces the matching account.
func (r *UserRepo) Update(user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	list, err := r.load()
	if err != nil {
		return err
	}
	for i, u := range list {
		if u.ID == user.ID {
			list[i] = user
			return r.save(list)
		}
	}
	return domain.ErrUserNotFound
}

// Count returns the number of stored accounts.
func (r *UserRepo) Count() (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	list, err := r.load()
	if err != nil {
		return 0, err
	}
	return len(list), nil
}

func toStored(u *entity.User) storedUser {
	return storedUser{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		UpdatedAt:    u.UpdatedAt,
	}
}

func fromStored(u storedUser) *entity.User {
	return &entity.User{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		UpdatedAt:    u.UpdatedAt,
	}
}
