package entity

import "time"

// ScopeAuth is the access scope for ordinary authenticated sessions. It is
// currently the only scope in the system, but the scope travels with every
// session so new kinds of access need no schema change.
const ScopeAuth = "auth"

// Session is one active login for a user: the signed token string plus the
// scope it authorizes. A user owns any number of sessions at once (one per
// device); revoking one leaves the others untouched.
type Session struct {
	// Token is the signed session token string. Exact string match is the
	// only identity a session has.
	Token string

	// UserID is the owning user.
	UserID uint

	// Scope is the access scope the session grants.
	Scope string

	// CreatedAt is the session creation time.
	CreatedAt time.Time
}
