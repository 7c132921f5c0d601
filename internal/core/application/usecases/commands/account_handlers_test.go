package commands_test

import (
	"errors"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterAccountCommandHandler_Handle(t *testing.T) {
	t.Run("stores the hashed password, never the plaintext", func(t *testing.T) {
		ctx := t.Context()
		hub := kernel.NewUUID()

		cmd, err := commands.NewRegisterAccountCommand(kernel.NewUUID(), "Minh", "Minh@Example.com",
			"s3cret-pass", "0900000000", account.Manager, account.Workplace{TransitHub: &hub})
		require.NoError(t, err)

		hasher := new(MockPasswordHasher)
		repo := new(MockAccountRepository)
		uow := new(MockUoW)

		stored := mock.MatchedBy(func(a *account.Account) bool {
			return a.PasswordHash() == "digest" &&
				a.Email() == "minh@example.com" &&
				a.Status() == account.Active &&
				a.TransitHub() != nil && a.TransitHub().IsEqual(hub)
		})
		mock.InOrder(
			hasher.On("Hash", ctx, "s3cret-pass").Return("digest", nil).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("AccountRepository").Return(repo).Once(),
			repo.On("Add", ctx, stored).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewRegisterAccountCommandHandler(accountUoWFactory{&uowFactory{uow: uow}}, hasher)
		require.NoError(t, h.Handle(ctx, cmd))

		hasher.AssertExpectations(t)
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("duplicate email is an integrity violation", func(t *testing.T) {
		ctx := t.Context()

		cmd, err := commands.NewRegisterAccountCommand(kernel.NewUUID(), "Minh", "minh@example.com",
			"s3cret-pass", "", account.Customer, account.Workplace{})
		require.NoError(t, err)

		hasher := new(MockPasswordHasher)
		hasher.On("Hash", ctx, "s3cret-pass").Return("digest", nil).Once()
		repo := new(MockAccountRepository)
		repo.On("Add", ctx, mock.Anything).Return(errs.NewIntegrityViolationError("email", nil)).Once()
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("AccountRepository").Return(repo).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewRegisterAccountCommandHandler(accountUoWFactory{&uowFactory{uow: uow}}, hasher)
		err = h.Handle(ctx, cmd)

		var integrity *errs.IntegrityViolationError
		require.ErrorAs(t, err, &integrity)
		assert.Equal(t, "email", integrity.ParamName)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("workplace rules are checked before a transaction starts", func(t *testing.T) {
		ctx := t.Context()
		point := kernel.NewUUID()

		cmd, err := commands.NewRegisterAccountCommand(kernel.NewUUID(), "Hoa", "hoa@example.com",
			"s3cret-pass", "", account.Shipper, account.Workplace{PickupPoint: &point})
		require.NoError(t, err)

		hasher := new(MockPasswordHasher)
		hasher.On("Hash", ctx, "s3cret-pass").Return("digest", nil).Once()
		factory := &uowFactory{uow: new(MockUoW)}

		err = commands.NewRegisterAccountCommandHandler(accountUoWFactory{factory}, hasher).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Zero(t, factory.created)
	})

	t.Run("hasher failure aborts", func(t *testing.T) {
		ctx := t.Context()

		cmd, err := commands.NewRegisterAccountCommand(kernel.NewUUID(), "Minh", "minh@example.com",
			"s3cret-pass", "", account.Customer, account.Workplace{})
		require.NoError(t, err)

		hasher := new(MockPasswordHasher)
		hasher.On("Hash", ctx, "s3cret-pass").Return("", errors.New("hasher down")).Once()
		factory := &uowFactory{uow: new(MockUoW)}

		err = commands.NewRegisterAccountCommandHandler(accountUoWFactory{factory}, hasher).Handle(ctx, cmd)

		require.EqualError(t, err, "hasher down")
		assert.Zero(t, factory.created)
	})
}

func TestChangePasswordCommandHandler_Handle(t *testing.T) {
	newCustomer := func(t *testing.T) *account.Account {
		t.Helper()
		acc, err := account.NewAccount(kernel.NewUUID(), "Lan", "lan@example.com", "old-digest", "",
			account.Customer, account.Workplace{})
		require.NoError(t, err)
		return acc
	}

	t.Run("re-hashes after a successful verify", func(t *testing.T) {
		ctx := t.Context()
		acc := newCustomer(t)

		hasher := new(MockPasswordHasher)
		repo := new(MockAccountRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("AccountRepository").Return(repo).Once(),
			repo.On("GetForUpdate", ctx, acc.ID()).Return(acc, nil).Once(),
			hasher.On("Verify", ctx, "old-pass", "old-digest").Return(true, nil).Once(),
			hasher.On("Hash", ctx, "new-pass").Return("new-digest", nil).Once(),
			repo.On("Update", ctx, acc).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewChangePasswordCommand(acc.ID(), "old-pass", "new-pass")
		require.NoError(t, err)

		err = commands.NewChangePasswordCommandHandler(accountUoWFactory{&uowFactory{uow: uow}}, hasher).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "new-digest", acc.PasswordHash())
		uow.AssertExpectations(t)
	})

	t.Run("wrong current password changes nothing", func(t *testing.T) {
		ctx := t.Context()
		acc := newCustomer(t)

		hasher := new(MockPasswordHasher)
		hasher.On("Verify", ctx, "guess", "old-digest").Return(false, nil).Once()
		repo := new(MockAccountRepository)
		repo.On("GetForUpdate", ctx, acc.ID()).Return(acc, nil).Once()
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("AccountRepository").Return(repo).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		cmd, err := commands.NewChangePasswordCommand(acc.ID(), "guess", "new-pass")
		require.NoError(t, err)

		err = commands.NewChangePasswordCommandHandler(accountUoWFactory{&uowFactory{uow: uow}}, hasher).Handle(ctx, cmd)

		require.ErrorIs(t, err, commands.ErrPasswordMismatch)
		assert.Equal(t, "old-digest", acc.PasswordHash())
		hasher.AssertNotCalled(t, "Hash", mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestDeleteAccountCommandHandler_Handle(t *testing.T) {
	t.Run("deletes and commits", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()

		repo := new(MockAccountRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("AccountRepository").Return(repo).Once(),
			repo.On("Delete", ctx, id).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewDeleteAccountCommand(id)
		require.NoError(t, err)

		require.NoError(t, commands.NewDeleteAccountCommandHandler(accountUoWFactory{&uowFactory{uow: uow}}).Handle(ctx, cmd))
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("referenced account is kept", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		violation := errs.NewIntegrityViolationErrorWithCause("sender", nil, errors.New("orders_sender_fkey"))

		repo := new(MockAccountRepository)
		repo.On("Delete", ctx, id).Return(violation).Once()
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("AccountRepository").Return(repo).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		cmd, err := commands.NewDeleteAccountCommand(id)
		require.NoError(t, err)

		err = commands.NewDeleteAccountCommandHandler(accountUoWFactory{&uowFactory{uow: uow}}).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrIntegrityViolation)
		var integrity *errs.IntegrityViolationError
		require.ErrorAs(t, err, &integrity)
		assert.Equal(t, "sender", integrity.ParamName)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("unconstructed command", func(t *testing.T) {
		err := commands.NewDeleteAccountCommandHandler(accountUoWFactory{&uowFactory{}}).
			Handle(t.Context(), commands.DeleteAccountCommand{})

		require.ErrorIs(t, err, commands.ErrDeleteAccountCommandIsNotConstructed)
	})
}
