package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create a new shipment order.
// The order starts pending, with no package and no shipper.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(), customerID, 2.5,
//	    "0912345678", "5 Ly Thuong Kiet",
//	    pointA, pointC, 30, time.Now(),
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	details order.Details

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the identifiers, weight, route and send
// date. Receiver fields and charge are checked when the order is built.
func NewCreateOrderCommand(
	orderID, sender kernel.UUID,
	weight float64,
	receiverNumber, receiverAddress string,
	pickupFrom, pickupTo kernel.UUID,
	charge float64,
	sendDate time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		details: order.Details{
			ReceiverNumber:  receiverNumber,
			ReceiverAddress: receiverAddress,
			Charge:          charge,
		},
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSender(sender),
		cmd.setWeight(weight),
		cmd.setRoute(pickupFrom, pickupTo),
		cmd.setSendDate(sendDate),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Details returns the customer supplied part of the order.
func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setSender(sender kernel.UUID) error {
	if err := sender.Validate(); err != nil {
		return order.ErrSenderIsRequired
	}

	c.details.Sender = sender
	return nil
}

func (c *CreateOrderCommand) setWeight(value float64) error {
	weight, err := kernel.NewWeight(value)
	if err != nil {
		return err
	}

	c.details.Weight = weight
	return nil
}

func (c *CreateOrderCommand) setRoute(from, to kernel.UUID) error {
	route, err := kernel.NewRoute(from, to)
	if err != nil {
		return err
	}

	c.details.Route = route
	return nil
}

func (c *CreateOrderCommand) setSendDate(sendDate time.Time) error {
	if sendDate.IsZero() {
		return order.ErrSendDateIsRequired
	}

	c.details.SendDate = sendDate
	return nil
}
