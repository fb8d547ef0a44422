// Package auth provides the credential primitives behind the application's
// auth ports: bcrypt password digests and signed JWT tokens.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptPasswordHasher hashes passwords with bcrypt. Each digest embeds its
// own salt and cost, so Verify needs no configuration.
type BcryptPasswordHasher struct {
	cost int
}

// NewBcryptPasswordHasher creates a hasher with the given cost. A cost
// outside bcrypt's supported range falls back to the library default.
func NewBcryptPasswordHasher(cost int) BcryptPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return BcryptPasswordHasher{cost: cost}
}

// Hash produces a salted bcrypt digest of the plain password.
func (h BcryptPasswordHasher) Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether the plain password matches the stored digest.
func (h BcryptPasswordHasher) Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
