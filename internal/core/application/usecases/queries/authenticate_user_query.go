package queries

import (
	"errors"

	"withus/internal/core/domain/model/kernel"
	"withus/internal/core/domain/model/user"
	"withus/internal/pkg/guard"
)

var (
	ErrAuthenticateUserQueryIsNotConstructed = errors.New(
		"AuthenticateUserQuery must be created via NewAuthenticateUserQuery constructor",
	)

	// ErrCredentialsAreRequired is returned for a login without an email
	// or a password.
	ErrCredentialsAreRequired = errors.New("email and password are required")
)

// AuthenticateUserQuery checks a user's credentials and issues a session
// token. Modeled as a query: a login reads state, it changes none.
type AuthenticateUserQuery struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateUserQuery creates a validated login query.
func NewAuthenticateUserQuery(email, password string) (AuthenticateUserQuery, error) {
	if email == "" || password == "" {
		return AuthenticateUserQuery{}, ErrCredentialsAreRequired
	}

	return AuthenticateUserQuery{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateUserQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateUserQueryIsNotConstructed)
}

// Email returns the login email.
func (q AuthenticateUserQuery) Email() string {
	return q.email
}

// Password returns the plain-text password to verify.
func (q AuthenticateUserQuery) Password() string {
	return q.password
}

// AuthenticateUserQueryResponse carries the session token and the identity
// it was issued for.
type AuthenticateUserQueryResponse struct {
	Token  string
	UserID kernel.UUID
	Name   string
	Email  string
	Role   user.Role
}
