package auth_test

import (
	"testing"

	"withus/internal/adapters/out/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := auth.NewBcryptPasswordHasher(bcrypt.MinCost)

	digest, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotEqual(t, "s3cret", digest)

	assert.True(t, hasher.Verify("s3cret", digest))
	assert.False(t, hasher.Verify("wrong", digest))
}

func TestBcryptPasswordHasher_DigestsAreSalted(t *testing.T) {
	hasher := auth.NewBcryptPasswordHasher(bcrypt.MinCost)

	first, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	second, err := hasher.Hash("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("s3cret", first))
	assert.True(t, hasher.Verify("s3cret", second))
}

func TestBcryptPasswordHasher_InvalidCostFallsBackToDefault(t *testing.T) {
	hasher := auth.NewBcryptPasswordHasher(-1)

	digest, err := hasher.Hash("s3cret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestBcryptPasswordHasher_VerifyRejectsMalformedDigest(t *testing.T) {
	hasher := auth.NewBcryptPasswordHasher(bcrypt.MinCost)

	assert.False(t, hasher.Verify("s3cret", "not-a-bcrypt-digest"))
	assert.False(t, hasher.Verify("s3cret", ""))
}
