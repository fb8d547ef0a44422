package auth

import (
	"fmt"
	"time"

	"withus/internal/core/domain/model/kernel"
	"withus/internal/core/domain/model/user"
	"withus/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

// Token purposes. A token issued for one purpose never verifies as the
// other.
const (
	purposeSession       = "session"
	purposePasswordReset = "password_reset"
)

type tokenClaims struct {
	Purpose string `json:"purpose"`
	Email   string `json:"email,omitempty"`
	Role    string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWTTokenService signs and verifies HS256 JWTs for user sessions and
// password resets. Lifetimes are fixed at construction.
type JWTTokenService struct {
	secret     []byte
	sessionTTL time.Duration
	resetTTL   time.Duration
}

// NewJWTTokenService creates a token service signing with the given secret.
func NewJWTTokenService(secret string, sessionTTL, resetTTL time.Duration) (JWTTokenService, error) {
	if secret == "" {
		return JWTTokenService{}, fmt.Errorf("token secret must not be empty")
	}
	if sessionTTL <= 0 || resetTTL <= 0 {
		return JWTTokenService{}, fmt.Errorf("token lifetimes must be positive")
	}

	return JWTTokenService{
		secret:     []byte(secret),
		sessionTTL: sessionTTL,
		resetTTL:   resetTTL,
	}, nil
}

// IssueSessionToken signs a session token carrying the user's identity,
// email and role.
func (s JWTTokenService) IssueSessionToken(u *user.User) (string, error) {
	claims := tokenClaims{
		Purpose: purposeSession,
		Email:   u.Email(),
		Role:    u.Role().String(),
	}
	return s.sign(u.ID(), claims, s.sessionTTL)
}

// VerifySessionToken checks signature, expiry and purpose, returning the
// embedded identity claims.
func (s JWTTokenService) VerifySessionToken(token string) (ports.SessionClaims, error) {
	claims, err := s.verify(token, purposeSession)
	if err != nil {
		return ports.SessionClaims{}, err
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return ports.SessionClaims{}, ports.ErrInvalidToken
	}
	role, err := user.RoleFromString(claims.Role)
	if err != nil {
		return ports.SessionClaims{}, ports.ErrInvalidToken
	}

	return ports.SessionClaims{
		UserID: userID,
		Email:  claims.Email,
		Role:   role,
	}, nil
}

// IssuePasswordResetToken signs a short-lived reset token for the user.
func (s JWTTokenService) IssuePasswordResetToken(u *user.User) (string, error) {
	return s.sign(u.ID(), tokenClaims{Purpose: purposePasswordReset}, s.resetTTL)
}

// VerifyPasswordResetToken resolves a reset token back to the user id.
func (s JWTTokenService) VerifyPasswordResetToken(token string) (kernel.UUID, error) {
	claims, err := s.verify(token, purposePasswordReset)
	if err != nil {
		return kernel.UUID{}, err
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.UUID{}, ports.ErrInvalidToken
	}
	return userID, nil
}

func (s JWTTokenService) sign(userID kernel.UUID, claims tokenClaims, ttl time.Duration) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", claims.Purpose, err)
	}
	return signed, nil
}

func (s JWTTokenService) verify(token, purpose string) (tokenClaims, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return tokenClaims{}, ports.ErrInvalidToken
	}
	if claims.Purpose != purpose {
		return tokenClaims{}, ports.ErrInvalidToken
	}
	return claims, nil
}
