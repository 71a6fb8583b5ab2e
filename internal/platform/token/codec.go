// Package token signs and verifies session tokens as HS256 JWTs.
package token

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned by Verify for any token that is malformed,
// carries a bad signature, or uses an unsupported signing algorithm. The
// caller cannot distinguish the cases; verification fails closed.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the identity a verified token carries.
type Claims struct {
	// SubjectID is the ID of the user the token was issued to.
	SubjectID uint
	// Scope is the access scope the token authorizes.
	Scope string
}

// Codec produces and validates signed session tokens with a process-wide
// symmetric secret injected at startup.
type Codec struct {
	secret []byte
}

// NewCodec creates a Codec signing with the given secret.
func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Sign creates a signed token binding the subject to the scope.
//
// Tokens deliberately carry no exp claim: a session lives until it is
// explicitly revoked from the session store. The jti claim makes every issued
// token unique, so two logins in the same second still produce distinct
// session entries.
func (c *Codec) Sign(subjectID uint, scope string) (string, error) {
	claims := jwt.MapClaims{
		"sub":    subjectID,
		"access": scope,
		"iat":    time.Now().Unix(),
		"jti":    uuid.NewString(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the token's structure and signature and returns the claims it
// carries. It performs no store lookup: a valid result only proves the token
// was minted by this process, not that the session is still active.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is ever issued; anything else is an attack or corruption.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok := claims["sub"].(float64) // JWT numbers decode as float64
	if !ok || sub < 0 || sub != math.Trunc(sub) {
		return nil, ErrInvalidToken
	}
	scope, ok := claims["access"].(string)
	if !ok || scope == "" {
		return nil, ErrInvalidToken
	}

	return &Claims{SubjectID: uint(sub), Scope: scope}, nil
}
