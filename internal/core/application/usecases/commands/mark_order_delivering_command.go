package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrMarkOrderDeliveringCommandIsNotConstructed = errors.New(
	"MarkOrderDeliveringCommand must be created via NewMarkOrderDeliveringCommand constructor",
)

// MarkOrderDeliveringCommand moves a pending order that travels on its own,
// without a package, to delivering.
type MarkOrderDeliveringCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkOrderDeliveringCommand(orderID kernel.UUID) (MarkOrderDeliveringCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkOrderDeliveringCommand{}, err
	}

	return MarkOrderDeliveringCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c MarkOrderDeliveringCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderDeliveringCommandIsNotConstructed)
}

func (c MarkOrderDeliveringCommand) OrderID() kernel.UUID {
	return c.orderID
}
