package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrDeleteAccountCommandIsNotConstructed = errors.New(
	"DeleteAccountCommand must be created via NewDeleteAccountCommand constructor",
)

type DeleteAccountCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteAccountCommand(accountID kernel.UUID) (DeleteAccountCommand, error) {
	if err := accountID.Validate(); err != nil {
		return DeleteAccountCommand{}, err
	}

	return DeleteAccountCommand{
		accountID: accountID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteAccountCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAccountCommandIsNotConstructed)
}

func (c DeleteAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}
