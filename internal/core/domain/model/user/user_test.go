package user_test

import (
	"testing"
	"time"

	"withus/internal/core/domain/model/kernel"
	"withus/internal/core/domain/model/user"
	"withus/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("valid customer", func(t *testing.T) {
		id := kernel.NewUUID()

		u, err := user.NewUser(id, "Alice", "alice@example.com", "$2a$10$digest", user.RoleCustomer)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.True(t, id.IsEqual(u.ID()))
		assert.Equal(t, "Alice", u.Name())
		assert.Equal(t, "alice@example.com", u.Email())
		assert.Equal(t, user.RoleCustomer, u.Role())
		assert.False(t, u.CreatedAt().IsZero())
	})

	t.Run("missing attributes", func(t *testing.T) {
		id := kernel.NewUUID()

		_, err := user.NewUser(id, "", "", "", user.RoleCustomer)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "Bob", "bob@example.com", "digest", user.Role("owner"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero id", func(t *testing.T) {
		_, err := user.NewUser(kernel.UUID{}, "Bob", "bob@example.com", "digest", user.RoleCustomer)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreUser(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	u, err := user.RestoreUser(kernel.NewUUID(), "Alice", "alice@example.com", "digest", user.RoleAdmin, created)

	require.NoError(t, err)
	assert.Equal(t, created, u.CreatedAt())
	assert.Equal(t, user.RoleAdmin, u.Role())
}

func TestUser_Validate_NotConstructed(t *testing.T) {
	var u user.User

	require.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
}

func TestUser_ChangePassword(t *testing.T) {
	u, err := user.NewUser(kernel.NewUUID(), "Alice", "alice@example.com", "old-digest", user.RoleCustomer)
	require.NoError(t, err)

	require.NoError(t, u.ChangePassword("new-digest"))
	assert.Equal(t, "new-digest", u.PasswordHash())

	require.ErrorIs(t, u.ChangePassword(""), errs.ErrValueIsRequired)
	assert.Equal(t, "new-digest", u.PasswordHash())
}

func TestRoleFromString(t *testing.T) {
	for _, valid := range []string{"customer", "admin"} {
		role, err := user.RoleFromString(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, role.String())
	}

	_, err := user.RoleFromString("superuser")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	assert.True(t, user.RoleAdmin.IsAdmin())
	assert.False(t, user.RoleCustomer.IsAdmin())
}
