package usecase

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"todo_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 6
)

// dummyHash is a valid bcrypt record compared against when the login email is
// unknown, so that the request costs the same as a real password check and
// response timing does not reveal whether the account exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// PasswordHasher hashes and verifies passwords.
// Following Go convention, interfaces are defined by the consumer (usecase),
// not the provider (platform/hash).
type PasswordHasher interface {
	// Hash derives a salted, self-describing one-way record from plaintext.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches the record in constant time.
	// A malformed record verifies as false, never as an error.
	Verify(plaintext, record string) bool
}

// AuthUsecase implements registration, login and logout.
type AuthUsecase struct {
	users  UserRepository
	hasher PasswordHasher
	store  *SessionStore
}

// NewAuthUsecase creates a new AuthUsecase.
func NewAuthUsecase(users UserRepository, hasher PasswordHasher, store *SessionStore) *AuthUsecase {
	return &AuthUsecase{
		users:  users,
		hasher: hasher,
		store:  store,
	}
}

// validateEmail trims the address and checks it is well formed.
func validateEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return "", ErrInvalidEmail
	}
	return email, nil
}

// validatePassword checks the password meets the minimum length.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: must be at least %d characters", ErrPasswordTooShort, minPasswordLength)
	}
	return nil
}

// Register creates a new user with a hashed password and issues the first
// session token. The plaintext password is hashed before the user is ever
// persisted; nothing downstream of this call sees it.
func (u *AuthUsecase) Register(ctx context.Context, email, password string) (*entity.User, string, error) {
	email, err := validateEmail(email)
	if err != nil {
		return nil, "", err
	}
	if err := validatePassword(password); err != nil {
		return nil, "", err
	}

	hashed, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Email: email, PasswordHash: hashed}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	tok, err := u.store.Issue(ctx, user, entity.ScopeAuth)
	if err != nil {
		return nil, "", err
	}
	return user, tok, nil
}

// Login authenticates the credentials and issues a new session token.
//
// Unknown email and wrong password both return ErrInvalidCredentials with no
// distinguishing detail, and the password check runs either way so the two
// cases cost the same.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := u.users.FindByEmail(ctx, strings.TrimSpace(email))

	record := dummyHash
	if err == nil {
		record = user.PasswordHash
	}
	ok := u.hasher.Verify(password, record)

	if err != nil || !ok {
		return nil, "", ErrInvalidCredentials
	}

	tok, err := u.store.Issue(ctx, user, entity.ScopeAuth)
	if err != nil {
		return nil, "", err
	}
	return user, tok, nil
}

// Logout revokes the presented session token. Other sessions of the same
// user stay active, and revoking an already-revoked token succeeds quietly.
func (u *AuthUsecase) Logout(ctx context.Context, userID uint, tokenString string) error {
	return u.store.Revoke(ctx, userID, tokenString)
}
