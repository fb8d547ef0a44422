package ports

import (
	"errors"

	"withus/internal/core/domain/model/kernel"
	"withus/internal/core/domain/model/user"
)

// ErrInvalidToken covers every token verification failure: bad signature,
// expiry, malformed payload or a token presented for the wrong purpose.
// The transport layer maps it to 401 without distinguishing the cause.
var ErrInvalidToken = errors.New("token is invalid or expired")

// ErrInvalidCredentials is returned on a failed login attempt. It does not
// reveal whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("incorrect email or password")

// PasswordHasher is the one-way credential store primitive. Digests are
// salted and never reversible.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}

// SessionClaims is the identity carried by a verified session token.
type SessionClaims struct {
	UserID kernel.UUID
	Email  string
	Role   user.Role
}

// TokenService issues and verifies the two signed, time-limited token kinds.
// The kinds are mutually exclusive: a session token fails reset verification
// and vice versa.
type TokenService interface {
	// IssueSessionToken signs a session token carrying identity and role.
	IssueSessionToken(u *user.User) (string, error)

	// VerifySessionToken checks signature, expiry and purpose, returning
	// the embedded claims or ErrInvalidToken.
	VerifySessionToken(token string) (SessionClaims, error)

	// IssuePasswordResetToken signs a short-lived single-purpose token.
	IssuePasswordResetToken(u *user.User) (string, error)

	// VerifyPasswordResetToken resolves a reset token back to the user id
	// or returns ErrInvalidToken.
	VerifyPasswordResetToken(token string) (kernel.UUID, error)
}
