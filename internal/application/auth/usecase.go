// Package auth implements login, profile management and first-boot seeding.
// Passwords are stored as bcrypt hashes; login failures are uniform so a caller
// cannot distinguish a wrong email from a wrong password.
package auth

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/resonira/invoice-api/internal/application/dto"
	"github.com/resonira/invoice-api/internal/domain"
	"github.com/resonira/invoice-api/internal/domain/entity"
	"github.com/resonira/invoice-api/internal/domain/repository"
	"github.com/resonira/invoice-api/pkg/jwt"
)

// Default account created when the user store is empty (first boot).
const (
	seedEmail    = "admin@resonira.com"
	seedPassword = "admin123"
	seedName     = "Admin User"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase authentication and profile use cases.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewUseCase builds the auth use case.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifies email (case-insensitive) and password. Unknown email and wrong
// password both return domain.ErrUnauthorized.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Success: true,
		User:    dto.ToUserResponse(user),
		Token:   token,
	}, nil
}

// GetProfile returns the account without credential fields.
func (uc *UseCase) GetProfile(id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// UpdateProfile applies name/email changes and, when NewPassword is set,
// re-verifies the current password before re-hashing. Fails closed on mismatch.
func (uc *UseCase) UpdateProfile(id string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.NewPassword != "" {
		if in.CurrentPassword == "" {
			return nil, domain.ErrInvalidInput
		}
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)) != nil {
			return nil, domain.ErrUnauthorized
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	user.UpdatedAt = time.Now().UTC()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// EnsureDefaultAdmin seeds the default account when the store holds no users.
// Returns true when seeding happened.
func (uc *UseCase) EnsureDefaultAdmin() (bool, error) {
	count, err := uc.userRepo.Count()
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	return true, uc.userRepo.Create(&entity.User{
		ID:           uuid.New().String(),
		Email:        seedEmail,
		Name:         seedName,
		PasswordHash: string(hash),
		UpdatedAt:    time.Now().UTC(),
	})
}
