package auth_test

import (
	"testing"
	"time"

	"withus/internal/adapters/out/auth"
	"withus/internal/core/domain/model/kernel"
	"withus/internal/core/domain/model/user"
	"withus/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenService(t *testing.T, sessionTTL, resetTTL time.Duration) auth.JWTTokenService {
	t.Helper()
	service, err := auth.NewJWTTokenService("test-secret", sessionTTL, resetTTL)
	require.NoError(t, err)
	return service
}

func tokenUser(t *testing.T, role user.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), "Alice", "alice@example.com", "digest", role)
	require.NoError(t, err)
	return u
}

func TestNewJWTTokenService_Validation(t *testing.T) {
	_, err := auth.NewJWTTokenService("", time.Hour, time.Hour)
	assert.Error(t, err)

	_, err = auth.NewJWTTokenService("secret", 0, time.Hour)
	assert.Error(t, err)

	_, err = auth.NewJWTTokenService("secret", time.Hour, -time.Minute)
	assert.Error(t, err)
}

func TestSessionToken_RoundTrip(t *testing.T) {
	service := newTokenService(t, time.Hour, time.Hour)
	u := tokenUser(t, user.RoleAdmin)

	token, err := service.IssueSessionToken(u)
	require.NoError(t, err)

	claims, err := service.VerifySessionToken(token)
	require.NoError(t, err)
	assert.True(t, claims.UserID.IsEqual(u.ID()))
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, user.RoleAdmin, claims.Role)
}

func TestPasswordResetToken_RoundTrip(t *testing.T) {
	service := newTokenService(t, time.Hour, time.Hour)
	u := tokenUser(t, user.RoleCustomer)

	token, err := service.IssuePasswordResetToken(u)
	require.NoError(t, err)

	userID, err := service.VerifyPasswordResetToken(token)
	require.NoError(t, err)
	assert.True(t, userID.IsEqual(u.ID()))
}

func TestTokenPurposesAreIsolated(t *testing.T) {
	service := newTokenService(t, time.Hour, time.Hour)
	u := tokenUser(t, user.RoleCustomer)

	sessionToken, err := service.IssueSessionToken(u)
	require.NoError(t, err)
	resetToken, err := service.IssuePasswordResetToken(u)
	require.NoError(t, err)

	_, err = service.VerifyPasswordResetToken(sessionToken)
	assert.ErrorIs(t, err, ports.ErrInvalidToken)

	_, err = service.VerifySessionToken(resetToken)
	assert.ErrorIs(t, err, ports.ErrInvalidToken)
}

func TestExpiredTokenIsRejected(t *testing.T) {
	service := newTokenService(t, time.Nanosecond, time.Nanosecond)
	u := tokenUser(t, user.RoleCustomer)

	sessionToken, err := service.IssueSessionToken(u)
	require.NoError(t, err)
	resetToken, err := service.IssuePasswordResetToken(u)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = service.VerifySessionToken(sessionToken)
	assert.ErrorIs(t, err, ports.ErrInvalidToken)

	_, err = service.VerifyPasswordResetToken(resetToken)
	assert.ErrorIs(t, err, ports.ErrInvalidToken)
}

func TestTokenSignedWithOtherSecretIsRejected(t *testing.T) {
	service := newTokenService(t, time.Hour, time.Hour)
	other, err := auth.NewJWTTokenService("other-secret", time.Hour, time.Hour)
	require.NoError(t, err)

	token, err := other.IssueSessionToken(tokenUser(t, user.RoleCustomer))
	require.NoError(t, err)

	_, err = service.VerifySessionToken(token)
	assert.ErrorIs(t, err, ports.ErrInvalidToken)
}

func TestMalformedTokenIsRejected(t *testing.T) {
	service := newTokenService(t, time.Hour, time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := service.VerifySessionToken(token)
		assert.ErrorIs(t, err, ports.ErrInvalidToken)

		_, err = service.VerifyPasswordResetToken(token)
		assert.ErrorIs(t, err, ports.ErrInvalidToken)
	}
}
