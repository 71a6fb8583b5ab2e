// Package entity defines the domain entities for the todos feature.
package entity

import "time"

// Todo is one todo record owned by the user who created it.
type Todo struct {
	// ID is the unique identifier for the todo.
	ID uint `gorm:"primaryKey"`

	// Text is the todo body. Required, trimmed, at least one character.
	Text string `gorm:"size:1024;not null"`

	// Completed marks the todo as done.
	Completed bool `gorm:"not null;default:false"`

	// CompletedAt is set when Completed flips to true and cleared when it
	// flips back.
	CompletedAt *time.Time

	// CreatorID is the user who owns this todo. Every read and write is
	// scoped to it; other users' todos are invisible, not forbidden.
	CreatorID uint `gorm:"index;not null"`

	// CreatedAt is the timestamp when the todo was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the todo was last updated.
	UpdatedAt time.Time
}
