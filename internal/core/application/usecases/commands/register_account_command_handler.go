package commands

import (
	"context"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/ports"
)

// RegisterAccountCommandHandler hashes the password and stores the account.
// A duplicate email is an integrity violation on "email"; an unknown
// workplace is an integrity violation on "pickupPoint" or "transitHub".
type RegisterAccountCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
}

func NewRegisterAccountCommandHandler(
	uowFactory AccountUoWFactory,
	hasher ports.PasswordHasher,
) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

func (h RegisterAccountCommandHandler) Handle(ctx context.Context, cmd RegisterAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := h.hasher.Hash(ctx, cmd.Password())
	if err != nil {
		return err
	}

	acc, err := account.NewAccount(
		cmd.ID(),
		cmd.Name(),
		cmd.Email(),
		hash,
		cmd.Phone(),
		cmd.Role(),
		cmd.Workplace(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AccountRepository().Add(ctx, acc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
