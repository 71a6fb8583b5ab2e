package usecase

import (
	"context"
	"errors"
	"fmt"

	"todo_backend/internal/feature/auth/domain/entity"
	"todo_backend/internal/platform/token"
)

// TokenCodec signs and verifies session tokens.
// Following Go convention, interfaces are defined by the consumer (usecase),
// not the provider (platform/token).
type TokenCodec interface {
	// Sign creates a signed token binding the subject to the scope.
	Sign(subjectID uint, scope string) (string, error)

	// Verify validates the token's structure and signature and returns its
	// claims. It performs no store lookup and checks no expiry.
	Verify(tokenString string) (*token.Claims, error)
}

// SessionStore manages the set of active sessions per user. It is the single
// authority on token liveness: a token is usable exactly while the store
// holds a matching entry, regardless of its signature staying valid forever.
type SessionStore struct {
	codec    TokenCodec
	sessions SessionRepository
	users    UserRepository
}

// NewSessionStore creates a SessionStore.
func NewSessionStore(codec TokenCodec, sessions SessionRepository, users UserRepository) *SessionStore {
	return &SessionStore{
		codec:    codec,
		sessions: sessions,
		users:    users,
	}
}

// Issue signs a new token for the user and appends it to the user's active
// sessions. Existing sessions are never removed as a side effect, so logins
// from several devices coexist.
func (s *SessionStore) Issue(ctx context.Context, user *entity.User, scope string) (string, error) {
	signed, err := s.codec.Sign(user.ID, scope)
	if err != nil {
		return "", fmt.Errorf("failed to issue session token: %w", err)
	}

	session := &entity.Session{
		Token:  signed,
		UserID: user.ID,
		Scope:  scope,
	}
	if err := s.sessions.Append(ctx, session); err != nil {
		return "", fmt.Errorf("failed to persist session: %w", err)
	}

	return signed, nil
}

// Revoke removes the session matching the token. Revoking a token that is
// not in the store is a no-op, so logout is idempotent. A revoked token is
// never reactivated; a later login mints a fresh token instead.
func (s *SessionStore) Revoke(ctx context.Context, userID uint, tokenString string) error {
	return s.sessions.Remove(ctx, userID, tokenString)
}

// IsActive returns the user when the store holds a session matching the
// token and scope, and ErrSessionNotActive otherwise. Absence is an expected
// outcome (a revoked or foreign token), not a failure.
func (s *SessionStore) IsActive(ctx context.Context, userID uint, tokenString, scope string) (*entity.User, error) {
	active, err := s.sessions.FindActive(ctx, userID, tokenString, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to check session: %w", err)
	}
	if !active {
		return nil, ErrSessionNotActive
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			// Session rows for a deleted user are dead entries, not access.
			return nil, ErrSessionNotActive
		}
		return nil, err
	}

	return user, nil
}
