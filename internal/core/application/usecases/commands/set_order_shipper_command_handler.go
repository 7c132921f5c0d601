package commands

import (
	"context"

	"logistics/internal/core/domain/model/order"
)

// SetOrderShipperCommandHandler stores a new shipper for an order. An unknown
// shipper is an integrity violation on "shipper".
type SetOrderShipperCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewSetOrderShipperCommandHandler(uowFactory OrderUoWFactory) SetOrderShipperCommandHandler {
	return SetOrderShipperCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h SetOrderShipperCommandHandler) Handle(ctx context.Context, cmd SetOrderShipperCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changeOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.SetShipper(cmd.Shipper())
	})
}
