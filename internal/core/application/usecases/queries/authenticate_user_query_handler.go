package queries

import (
	"context"
	"errors"

	"withus/internal/core/ports"

	"withus/internal/pkg/errs"
)

// AuthenticateUserQueryHandler verifies login credentials against the stored
// password hash and issues a session token. Unlike the other query handlers
// it goes through the user repository rather than raw SQL: password
// verification needs the aggregate's hash and the failure modes must stay
// indistinguishable.
type AuthenticateUserQueryHandler struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
}

// NewAuthenticateUserQueryHandler creates a handler for logins.
func NewAuthenticateUserQueryHandler(
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
) AuthenticateUserQueryHandler {
	return AuthenticateUserQueryHandler{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Handle verifies the credentials. An unknown email and a wrong password
// both yield ports.ErrInvalidCredentials.
func (h AuthenticateUserQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateUserQuery,
) (AuthenticateUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	u, err := h.users.GetByEmail(ctx, query.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return AuthenticateUserQueryResponse{}, ports.ErrInvalidCredentials
	}
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	if !h.hasher.Verify(query.Password(), u.PasswordHash()) {
		return AuthenticateUserQueryResponse{}, ports.ErrInvalidCredentials
	}

	token, err := h.tokens.IssueSessionToken(u)
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	return AuthenticateUserQueryResponse{
		Token:  token,
		UserID: u.ID(),
		Name:   u.Name(),
		Email:  u.Email(),
		Role:   u.Role(),
	}, nil
}
