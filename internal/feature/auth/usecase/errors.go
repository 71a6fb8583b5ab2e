// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to register an email
	// that is already taken.
	ErrEmailAlreadyExists = errors.New("email already in use")

	// ErrInvalidCredentials is returned on login failure. It deliberately does
	// not say whether the email was unknown or the password wrong, so callers
	// cannot enumerate registered accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrSessionNotActive is returned when a well-formed, correctly signed
	// token has no matching entry in the session store. To the HTTP caller it
	// is indistinguishable from an invalid token.
	ErrSessionNotActive = errors.New("session not active")

	// ErrInvalidEmail is returned when the registration email is not a
	// well-formed address.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrPasswordTooShort is returned when the registration password is below
	// the minimum length.
	ErrPasswordTooShort = errors.New("password too short")
)
