package adapters

import (
	"time"

	"todo_backend/internal/feature/auth/domain/entity"
)

// SessionModel is the GORM model for the sessions table. One row is one
// active login; the token string itself is the primary key, so inserting and
// deleting sessions are single-row atomic operations and concurrent logins
// for the same user never clobber each other.
type SessionModel struct {
	Token     string    `gorm:"primaryKey;size:512"`
	UserID    uint      `gorm:"index;not null"`
	Scope     string    `gorm:"size:32;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}

// ToEntity converts the GORM model to a domain entity.
func (m *SessionModel) ToEntity() *entity.Session {
	return &entity.Session{
		Token:     m.Token,
		UserID:    m.UserID,
		Scope:     m.Scope,
		CreatedAt: m.CreatedAt,
	}
}

// SessionModelFromEntity converts a domain entity to a GORM model.
func SessionModelFromEntity(s *entity.Session) *SessionModel {
	return &SessionModel{
		Token:     s.Token,
		UserID:    s.UserID,
		Scope:     s.Scope,
		CreatedAt: s.CreatedAt,
	}
}
