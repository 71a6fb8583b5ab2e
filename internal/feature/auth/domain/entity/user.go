// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered principal.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the user's email address used as the login key.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// PasswordHash is the bcrypt record of the user's password. It is only
	// ever written by the hashing pipeline; plaintext is never stored, and
	// re-saving a user without a password change must not re-hash it.
	PasswordHash string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
