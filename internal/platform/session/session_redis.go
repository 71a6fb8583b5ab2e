// Package session provides a Redis-backed session repository.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"todo_backend/internal/feature/auth/domain/entity"
	"todo_backend/internal/feature/auth/usecase"
)

// SessionRedis implements usecase.SessionRepository using Redis. Each session
// lives under its own key, and a per-user set holds the member tokens, so
// adding or removing a session touches only that session's entries. Keys
// carry no TTL: tokens have no expiry, revocation is the only way out.
type SessionRedis struct {
	client *redis.Client
	prefix string
}

// Compile-time check to ensure SessionRedis implements SessionRepository.
var _ usecase.SessionRepository = (*SessionRedis)(nil)

// NewSessionRedis creates a new SessionRedis instance.
func NewSessionRedis(client *redis.Client, prefix string) *SessionRedis {
	return &SessionRedis{
		client: client,
		prefix: prefix,
	}
}

// sessionKey returns the Redis key for a session.
func (r *SessionRedis) sessionKey(token string) string {
	return fmt.Sprintf("%s:%s", r.prefix, token)
}

// userSessionsKey returns the Redis key for a user's session set.
func (r *SessionRedis) userSessionsKey(userID uint) string {
	return fmt.Sprintf("%s:user:%d", r.prefix, userID)
}

// Append persists one new session.
func (r *SessionRedis) Append(ctx context.Context, session *entity.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := r.client.Set(ctx, r.sessionKey(session.Token), data, 0).Err(); err != nil {
		return err
	}

	return r.client.SAdd(ctx, r.userSessionsKey(session.UserID), session.Token).Err()
}

// Remove deletes the session matching the token. A missing token deletes
// nothing and returns no error.
func (r *SessionRedis) Remove(ctx context.Context, userID uint, token string) error {
	if err := r.client.Del(ctx, r.sessionKey(token)).Err(); err != nil {
		return err
	}
	return r.client.SRem(ctx, r.userSessionsKey(userID), token).Err()
}

// FindActive reports whether the user holds a session with this token and
// scope.
func (r *SessionRedis) FindActive(ctx context.Context, userID uint, token, scope string) (bool, error) {
	data, err := r.client.Get(ctx, r.sessionKey(token)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}

	var session entity.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return false, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return session.UserID == userID && session.Scope == scope, nil
}

// CountByUserID returns the number of active sessions for a user.
func (r *SessionRedis) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	return r.client.SCard(ctx, r.userSessionsKey(userID)).Result()
}
