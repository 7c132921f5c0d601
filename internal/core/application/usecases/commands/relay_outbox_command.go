package commands

import (
	"errors"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const maxRelayBatch = 1000

var ErrRelayOutboxCommandIsNotConstructed = errors.New(
	"RelayOutboxCommand must be created via NewRelayOutboxCommand constructor",
)

// RelayOutboxCommand publishes up to Batch pending shipment change messages.
type RelayOutboxCommand struct {
	batch int

	guard guard.ConstructorGuard
}

func NewRelayOutboxCommand(batch int) (RelayOutboxCommand, error) {
	if batch <= 0 || batch > maxRelayBatch {
		return RelayOutboxCommand{}, errs.NewValueIsOutOfRangeError("batch", batch, 1, maxRelayBatch)
	}

	return RelayOutboxCommand{
		batch: batch,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c RelayOutboxCommand) Validate() error {
	return c.guard.Validate(ErrRelayOutboxCommandIsNotConstructed)
}

func (c RelayOutboxCommand) Batch() int {
	return c.batch
}
