// Package middleware wires the authentication gate into the gin pipeline.
package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"todo_backend/internal/feature/auth/transport/http/dto"
	"todo_backend/internal/feature/auth/usecase"
)

// HeaderAuthToken is the request and response header carrying the session
// token.
const HeaderAuthToken = "x-auth"

// contextIdentity is the gin context key holding the resolved Identity.
const contextIdentity = "auth.identity"

// Authenticator resolves a raw token to a caller identity.
// Following Go convention, interfaces are defined by the consumer
// (middleware), not the provider (usecase).
type Authenticator interface {
	Authenticate(ctx context.Context, rawToken string) (*usecase.Identity, error)
}

// AuthRequired returns a gin middleware that rejects any request whose x-auth
// header does not resolve to an active session. All rejections are the same
// opaque 401; the caller learns nothing about why the token failed.
func AuthRequired(gate Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := gate.Authenticate(c.Request.Context(), c.GetHeader(HeaderAuthToken))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorRes{Error: "unauthorized"})
			return
		}

		c.Set(contextIdentity, identity)
		c.Next()
	}
}

// IdentityFromContext returns the Identity stashed by AuthRequired.
func IdentityFromContext(c *gin.Context) (*usecase.Identity, bool) {
	v, ok := c.Get(contextIdentity)
	if !ok {
		return nil, false
	}
	identity, ok := v.(*usecase.Identity)
	return identity, ok
}
