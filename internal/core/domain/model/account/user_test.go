package account_test

import (
	"testing"

	"ghostkitchen/internal/core/domain/model/account"
	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Run("hash verifies against the original password", func(t *testing.T) {
		hash, err := account.HashPassword("s3cret")
		require.NoError(t, err)
		assert.NotEqual(t, "s3cret", hash)

		kitchenID := kernel.NewUUID()
		u, err := account.NewUser(kernel.NewUUID(), "chef@example.com", hash, order.RoleKitchen, &kitchenID)
		require.NoError(t, err)

		require.NoError(t, u.CheckPassword("s3cret"))
		require.ErrorIs(t, u.CheckPassword("wrong"), account.ErrInvalidCredentials)
	})

	t.Run("empty password is rejected", func(t *testing.T) {
		_, err := account.HashPassword("")
		require.Error(t, err)
	})
}

func TestNewUser(t *testing.T) {
	hash, err := account.HashPassword("s3cret")
	require.NoError(t, err)

	t.Run("kitchen user requires a kitchen id", func(t *testing.T) {
		_, err := account.NewUser(kernel.NewUUID(), "chef@example.com", hash, order.RoleKitchen, nil)
		require.Error(t, err)
	})

	t.Run("admin user has no tenant scope", func(t *testing.T) {
		u, err := account.NewUser(kernel.NewUUID(), "ops@example.com", hash, order.RoleAdmin, nil)

		require.NoError(t, err)
		assert.Nil(t, u.KitchenID())
		assert.Equal(t, order.RoleAdmin, u.Role())
	})

	t.Run("rejects missing email", func(t *testing.T) {
		_, err := account.NewUser(kernel.NewUUID(), "", hash, order.RoleAdmin, nil)
		require.Error(t, err)
	})
}
