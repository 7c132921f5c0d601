package commands

import (
	"context"

	"logistics/internal/core/domain/model/order"
)

// DeliverOrderCommandHandler marks an order delivered and stamps its arrival
// date. Delivered and cancelled orders are rejected with an invalid
// transition and keep their stored state.
type DeliverOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewDeliverOrderCommandHandler(uowFactory OrderUoWFactory) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changeOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.Deliver(cmd.ArrivalDate())
	})
}
