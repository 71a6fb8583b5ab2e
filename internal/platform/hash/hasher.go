// Package hash provides salted one-way password hashing backed by bcrypt.
package hash

import (
	"fmt"
	"runtime"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes and verifies passwords. The bcrypt record it produces embeds
// the algorithm, cost and salt, so verification needs no side channel.
type Hasher struct {
	cost int
	// sem bounds concurrent bcrypt work so a burst of logins cannot occupy
	// every worker and starve unrelated request handling.
	sem chan struct{}
}

// NewHasher creates a Hasher with the given bcrypt cost. Costs below
// bcrypt.DefaultCost are raised to it; the stored-hash strength must never
// regress below the cost the system started with.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.DefaultCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{
		cost: cost,
		sem:  make(chan struct{}, maxParallelHashes()),
	}
}

func maxParallelHashes() int {
	n := runtime.GOMAXPROCS(0)
	if n < 2 {
		n = 2
	}
	return n
}

// Hash derives a bcrypt record from the plaintext with a fresh random salt.
// It fails only on entropy or computation errors; password strength rules are
// the caller's responsibility.
func (h *Hasher) Hash(plaintext string) (string, error) {
	h.sem <- struct{}{}
	defer func() { <-h.sem }()

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the bcrypt record. The comparison
// is constant time. A mismatch or a malformed record both return false; this
// never returns an error to the caller.
func (h *Hasher) Verify(plaintext, record string) bool {
	h.sem <- struct{}{}
	defer func() { <-h.sem }()

	return bcrypt.CompareHashAndPassword([]byte(record), []byte(plaintext)) == nil
}
