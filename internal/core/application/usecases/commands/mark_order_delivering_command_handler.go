package commands

import (
	"context"

	"logistics/internal/core/domain/model/order"
)

// MarkOrderDeliveringCommandHandler applies pending -> delivering. Any other
// starting status is an invalid transition.
type MarkOrderDeliveringCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewMarkOrderDeliveringCommandHandler(uowFactory OrderUoWFactory) MarkOrderDeliveringCommandHandler {
	return MarkOrderDeliveringCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h MarkOrderDeliveringCommandHandler) Handle(ctx context.Context, cmd MarkOrderDeliveringCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changeOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.MarkDelivering()
	})
}
