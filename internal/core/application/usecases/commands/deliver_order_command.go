package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverOrderCommand records that an order reached its receiver.
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	arrivalDate time.Time

	guard guard.ConstructorGuard
}

func NewDeliverOrderCommand(orderID kernel.UUID, arrivalDate time.Time) (DeliverOrderCommand, error) {
	cmd := DeliverOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setArrivalDate(arrivalDate),
	); err != nil {
		return DeliverOrderCommand{}, err
	}

	return cmd, nil
}

func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

func (c DeliverOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c DeliverOrderCommand) ArrivalDate() time.Time {
	return c.arrivalDate
}

func (c *DeliverOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DeliverOrderCommand) setArrivalDate(arrivalDate time.Time) error {
	if arrivalDate.IsZero() {
		return order.ErrArrivalDateIsRequired
	}

	c.arrivalDate = arrivalDate
	return nil
}
