package usecase

import (
	"context"

	"todo_backend/internal/feature/auth/domain/entity"
)

// SessionRepository abstracts durable storage for a user's active sessions.
//
// Append and Remove must be atomic add/remove-by-value operations at the
// storage layer (an INSERT/DELETE, a set add/remove), never a read of the
// whole session list followed by a write-back. Two concurrent logins or a
// login racing a logout for the same user must both take effect.
type SessionRepository interface {
	// Append adds one session for the user. Existing sessions are never
	// touched; multiple devices hold independent sessions concurrently.
	Append(ctx context.Context, session *entity.Session) error

	// Remove deletes the session whose token exactly matches, if present.
	// Removing an absent token is a no-op, not an error.
	Remove(ctx context.Context, userID uint, token string) error

	// FindActive reports whether the user holds a session matching both the
	// token and the scope.
	FindActive(ctx context.Context, userID uint, token, scope string) (bool, error)

	// CountByUserID returns the number of active sessions for a user.
	CountByUserID(ctx context.Context, userID uint) (int64, error)
}
