package commands

import (
	"context"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

var ErrPasswordMismatch = errs.NewValueIsInvalidError("current password does not match")

// ChangePasswordCommandHandler verifies the current password and stores the
// digest of the new one. The account row is locked for the duration so two
// concurrent changes cannot interleave their verify and write.
type ChangePasswordCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
}

func NewChangePasswordCommandHandler(
	uowFactory AccountUoWFactory,
	hasher ports.PasswordHasher,
) ChangePasswordCommandHandler {
	return ChangePasswordCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

func (h ChangePasswordCommandHandler) Handle(ctx context.Context, cmd ChangePasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AccountRepository()
	acc, err := repo.GetForUpdate(ctx, cmd.AccountID())
	if err != nil {
		return err
	}

	ok, err := h.hasher.Verify(ctx, cmd.Current(), acc.PasswordHash())
	if err != nil {
		return err
	}
	if !ok {
		return ErrPasswordMismatch
	}

	hash, err := h.hasher.Hash(ctx, cmd.Next())
	if err != nil {
		return err
	}
	if err = acc.SetPasswordHash(hash); err != nil {
		return err
	}

	if err = repo.Update(ctx, acc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
