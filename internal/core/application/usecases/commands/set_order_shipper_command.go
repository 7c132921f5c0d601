package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrSetOrderShipperCommandIsNotConstructed = errors.New(
	"SetOrderShipperCommand must be created via NewSetOrderShipperCommand constructor",
)

// SetOrderShipperCommand reassigns the shipper carrying an order. A nil
// shipper clears the assignment. The order status does not change.
type SetOrderShipperCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	shipper *kernel.UUID

	guard guard.ConstructorGuard
}

func NewSetOrderShipperCommand(orderID kernel.UUID, shipper *kernel.UUID) (SetOrderShipperCommand, error) {
	cmd := SetOrderShipperCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setShipper(shipper),
	); err != nil {
		return SetOrderShipperCommand{}, err
	}

	return cmd, nil
}

func (c SetOrderShipperCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderShipperCommandIsNotConstructed)
}

func (c SetOrderShipperCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Shipper returns nil when the assignment is being cleared.
func (c SetOrderShipperCommand) Shipper() *kernel.UUID {
	return c.shipper
}

func (c *SetOrderShipperCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetOrderShipperCommand) setShipper(shipper *kernel.UUID) error {
	if shipper != nil {
		if err := shipper.Validate(); err != nil {
			return err
		}
	}

	c.shipper = shipper
	return nil
}
