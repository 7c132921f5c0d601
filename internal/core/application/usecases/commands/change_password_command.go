package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrChangePasswordCommandIsNotConstructed = errors.New(
	"ChangePasswordCommand must be created via NewChangePasswordCommand constructor",
)

// ChangePasswordCommand replaces an account password after checking the
// current one.
type ChangePasswordCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	current   string
	next      string

	guard guard.ConstructorGuard
}

func NewChangePasswordCommand(accountID kernel.UUID, current, next string) (ChangePasswordCommand, error) {
	cmd := ChangePasswordCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setPasswords(current, next),
	); err != nil {
		return ChangePasswordCommand{}, err
	}

	return cmd, nil
}

func (c ChangePasswordCommand) Validate() error {
	return c.guard.Validate(ErrChangePasswordCommandIsNotConstructed)
}

func (c ChangePasswordCommand) AccountID() kernel.UUID {
	return c.accountID
}

func (c ChangePasswordCommand) Current() string {
	return c.current
}

func (c ChangePasswordCommand) Next() string {
	return c.next
}

func (c *ChangePasswordCommand) setAccountID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.accountID = id
	return nil
}

func (c *ChangePasswordCommand) setPasswords(current, next string) error {
	if current == "" {
		return ErrPasswordIsRequired
	}
	if err := validatePassword(next); err != nil {
		return err
	}

	c.current = current
	c.next = next
	return nil
}
