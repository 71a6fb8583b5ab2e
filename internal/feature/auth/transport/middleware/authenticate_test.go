package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo_backend/internal/feature/auth/domain/entity"
	"todo_backend/internal/feature/auth/usecase"
	"todo_backend/internal/platform/token"
)

// mockAuthenticator is a mock implementation of the Authenticator interface.
type mockAuthenticator struct {
	AuthenticateFunc func(ctx context.Context, rawToken string) (*usecase.Identity, error)
}

func (m *mockAuthenticator) Authenticate(ctx context.Context, rawToken string) (*usecase.Identity, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, rawToken)
	}
	return nil, token.ErrInvalidToken
}

func newProtectedRouter(gate Authenticator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthRequired(gate), func(c *gin.Context) {
		identity, ok := IdentityFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "identity missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": identity.User.ID, "token": identity.Token})
	})
	return r
}

func TestAuthRequired(t *testing.T) {
	liveGate := &mockAuthenticator{
		AuthenticateFunc: func(ctx context.Context, rawToken string) (*usecase.Identity, error) {
			if rawToken == "live-token" {
				return &usecase.Identity{User: &entity.User{ID: 42}, Token: rawToken}, nil
			}
			return nil, usecase.ErrSessionNotActive
		},
	}

	t.Run("missing header is rejected", func(t *testing.T) {
		r := newProtectedRouter(liveGate)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("revoked or invalid token is the same opaque 401", func(t *testing.T) {
		r := newProtectedRouter(liveGate)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(HeaderAuthToken, "revoked-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"unauthorized"}`, w.Body.String())
	})

	t.Run("live token reaches the handler with identity attached", func(t *testing.T) {
		r := newProtectedRouter(liveGate)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(HeaderAuthToken, "live-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":42,"token":"live-token"}`, w.Body.String())
	})
}

func TestIdentityFromContext_Missing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := IdentityFromContext(c)
	assert.False(t, ok)
}
