package entity

import "time"

// User is an application account. Email is unique case-insensitively.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"` // bcrypt hash, never serialized
	UpdatedAt    time.Time `json:"updatedAt"`
}
