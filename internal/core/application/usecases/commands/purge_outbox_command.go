package commands

import (
	"errors"
	"time"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrPurgeOutboxCommandIsNotConstructed = errors.New(
	"PurgeOutboxCommand must be created via NewPurgeOutboxCommand constructor",
)

// PurgeOutboxCommand removes messages published longer ago than OlderThan.
type PurgeOutboxCommand struct {
	olderThan time.Duration

	guard guard.ConstructorGuard
}

func NewPurgeOutboxCommand(olderThan time.Duration) (PurgeOutboxCommand, error) {
	if olderThan <= 0 {
		return PurgeOutboxCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"olderThan",
			errors.New("retention must be positive"),
		)
	}

	return PurgeOutboxCommand{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c PurgeOutboxCommand) Validate() error {
	return c.guard.Validate(ErrPurgeOutboxCommandIsNotConstructed)
}

func (c PurgeOutboxCommand) OlderThan() time.Duration {
	return c.olderThan
}
