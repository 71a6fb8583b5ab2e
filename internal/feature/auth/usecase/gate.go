package usecase

import (
	"context"

	"todo_backend/internal/feature/auth/domain/entity"
	"todo_backend/internal/platform/token"
)

// Identity is the resolved caller of an authenticated request.
type Identity struct {
	// User is the authenticated user record.
	User *entity.User
	// Token is the raw token the request presented, kept so logout can
	// revoke exactly the session it arrived on.
	Token string
}

// Gate is the request-time authentication check. It is a plain decision
// function with no transport coupling; the HTTP middleware only extracts the
// header and maps the error to a status code.
type Gate struct {
	codec TokenCodec
	store *SessionStore
}

// NewGate creates a Gate.
func NewGate(codec TokenCodec, store *SessionStore) *Gate {
	return &Gate{codec: codec, store: store}
}

// Authenticate resolves a raw token to an Identity. The signature proves the
// token was minted here; store membership proves it has not been revoked.
// Signature validity alone never implies liveness. Every failure mode,
// including an empty token, resolves to an error with no partial identity.
func (g *Gate) Authenticate(ctx context.Context, rawToken string) (*Identity, error) {
	if rawToken == "" {
		return nil, token.ErrInvalidToken
	}

	claims, err := g.codec.Verify(rawToken)
	if err != nil {
		return nil, err
	}

	if claims.Scope != entity.ScopeAuth {
		return nil, ErrSessionNotActive
	}

	user, err := g.store.IsActive(ctx, claims.SubjectID, rawToken, claims.Scope)
	if err != nil {
		return nil, err
	}

	return &Identity{User: user, Token: rawToken}, nil
}
