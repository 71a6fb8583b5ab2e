package session

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo_backend/internal/feature/auth/domain/entity"
)

// setupTestRedis creates a miniredis instance for testing.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return client
}

func testSession(userID uint, token string) *entity.Session {
	return &entity.Session{
		Token:  token,
		UserID: userID,
		Scope:  entity.ScopeAuth,
	}
}

func TestNewSessionRedis(t *testing.T) {
	client := setupTestRedis(t)
	repo := NewSessionRedis(client, "session")

	assert.NotNil(t, repo)
	assert.Equal(t, "session", repo.prefix)
}

func TestSessionRedis_Append(t *testing.T) {
	ctx := context.Background()
	client := setupTestRedis(t)
	repo := NewSessionRedis(client, "session")

	require.NoError(t, repo.Append(ctx, testSession(1, "token-a")))

	// Session key exists and has no TTL: sessions never expire on their own.
	data, err := client.Get(ctx, repo.sessionKey("token-a")).Result()
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	ttl, err := client.TTL(ctx, repo.sessionKey("token-a")).Result()
	require.NoError(t, err)
	assert.Less(t, ttl.Seconds(), 0.0, "session keys must not expire")

	isMember, err := client.SIsMember(ctx, repo.userSessionsKey(1), "token-a").Result()
	require.NoError(t, err)
	assert.True(t, isMember)
}

func TestSessionRedis_FindActive(t *testing.T) {
	ctx := context.Background()
	client := setupTestRedis(t)
	repo := NewSessionRedis(client, "session")

	require.NoError(t, repo.Append(ctx, testSession(1, "token-a")))

	tests := []struct {
		name   string
		userID uint
		token  string
		scope  string
		want   bool
	}{
		{name: "match", userID: 1, token: "token-a", scope: entity.ScopeAuth, want: true},
		{name: "unknown token", userID: 1, token: "token-x", scope: entity.ScopeAuth, want: false},
		{name: "wrong user", userID: 2, token: "token-a", scope: entity.ScopeAuth, want: false},
		{name: "wrong scope", userID: 1, token: "token-a", scope: "admin", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			active, err := repo.FindActive(ctx, tt.userID, tt.token, tt.scope)
			require.NoError(t, err)
			assert.Equal(t, tt.want, active)
		})
	}
}

func TestSessionRedis_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("removes one session and leaves the rest", func(t *testing.T) {
		client := setupTestRedis(t)
		repo := NewSessionRedis(client, "session")

		require.NoError(t, repo.Append(ctx, testSession(1, "token-a")))
		require.NoError(t, repo.Append(ctx, testSession(1, "token-b")))

		require.NoError(t, repo.Remove(ctx, 1, "token-a"))

		active, err := repo.FindActive(ctx, 1, "token-a", entity.ScopeAuth)
		require.NoError(t, err)
		assert.False(t, active)

		active, err = repo.FindActive(ctx, 1, "token-b", entity.ScopeAuth)
		require.NoError(t, err)
		assert.True(t, active)

		count, err := repo.CountByUserID(ctx, 1)
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})

	t.Run("removing an absent token is a no-op", func(t *testing.T) {
		client := setupTestRedis(t)
		repo := NewSessionRedis(client, "session")

		assert.NoError(t, repo.Remove(ctx, 1, "never-existed"))
	})
}

func TestSessionRedis_CountByUserID(t *testing.T) {
	ctx := context.Background()
	client := setupTestRedis(t)
	repo := NewSessionRedis(client, "session")

	count, err := repo.CountByUserID(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	require.NoError(t, repo.Append(ctx, testSession(1, "token-a")))
	require.NoError(t, repo.Append(ctx, testSession(1, "token-b")))
	require.NoError(t, repo.Append(ctx, testSession(2, "token-c")))

	count, err = repo.CountByUserID(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}
