package account_test

import (
	"testing"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	point := kernel.NewUUID()
	hub := kernel.NewUUID()

	t.Run("should create active customer without workplace", func(t *testing.T) {
		acc, err := account.NewAccount(kernel.NewUUID(), "Minh", " Minh@Example.com ", "hash", "0901", account.Customer,
			account.Workplace{})

		require.NoError(t, err)
		require.NoError(t, acc.Validate())
		assert.Equal(t, "minh@example.com", acc.Email())
		assert.Equal(t, account.Active, acc.Status())
		assert.Nil(t, acc.PickupPoint())
		assert.Nil(t, acc.TransitHub())
	})

	t.Run("staff and manager need exactly one workplace", func(t *testing.T) {
		for _, role := range []account.Role{account.Staff, account.Manager} {
			_, err := account.NewAccount(kernel.NewUUID(), "A", "a@b.co", "hash", "", role, account.Workplace{})
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, role.String())

			_, err = account.NewAccount(kernel.NewUUID(), "A", "a@b.co", "hash", "", role,
				account.Workplace{PickupPoint: &point, TransitHub: &hub})
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, role.String())

			acc, err := account.NewAccount(kernel.NewUUID(), "A", "a@b.co", "hash", "", role,
				account.Workplace{TransitHub: &hub})
			require.NoError(t, err, role.String())
			assert.True(t, acc.TransitHub().IsEqual(hub))
		}
	})

	t.Run("shipper and customer cannot have workplace", func(t *testing.T) {
		for _, role := range []account.Role{account.Shipper, account.Customer} {
			_, err := account.NewAccount(kernel.NewUUID(), "A", "a@b.co", "hash", "", role,
				account.Workplace{PickupPoint: &point})

			require.Error(t, err)
			assert.Contains(t, err.Error(), "workplace is invalid")
		}
	})

	t.Run("should reject malformed email and empty hash", func(t *testing.T) {
		_, err := account.NewAccount(kernel.NewUUID(), "A", "not an email", "", "", account.Customer,
			account.Workplace{})

		require.ErrorIs(t, err, account.ErrPasswordHashIsRequired)
		assert.Contains(t, err.Error(), "email is invalid")
	})
}

func TestRoleAndStatusParsing(t *testing.T) {
	for _, r := range []account.Role{account.Customer, account.Staff, account.Manager, account.Shipper} {
		parsed, err := account.ParseRole(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}
	_, err := account.ParseRole("admin")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	st, err := account.ParseStatus("inactive")
	require.NoError(t, err)
	assert.Equal(t, account.Inactive, st)
	_, err = account.ParseStatus("banned")
	require.Error(t, err)
}

func TestAccount_SetPasswordHash(t *testing.T) {
	acc, err := account.NewAccount(kernel.NewUUID(), "A", "a@b.co", "old", "", account.Shipper, account.Workplace{})
	require.NoError(t, err)

	require.ErrorIs(t, acc.SetPasswordHash("  "), account.ErrPasswordHashIsRequired)
	assert.Equal(t, "old", acc.PasswordHash())

	require.NoError(t, acc.SetPasswordHash("new"))
	assert.Equal(t, "new", acc.PasswordHash())
}
