package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	sender, err := fromRaw(body.Sender)
	if err != nil {
		return s.writeError(ctx, err)
	}
	from, err := fromRaw(body.PickupFrom)
	if err != nil {
		return s.writeError(ctx, err)
	}
	to, err := fromRaw(body.PickupTo)
	if err != nil {
		return s.writeError(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		id, sender, body.Weight, body.ReceiverNumber, body.ReceiverAddress,
		from, to, body.Charge, body.SendDate,
	)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.h.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: id.Bytes()})
}

// GetOrders handles GET /api/v1/orders. Every query parameter is optional;
// pickupPoint cannot be combined with pickupFrom or pickupTo.
func (s *Server) GetOrders(ctx echo.Context) error {
	filter, err := orderFilter(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}
	query, err := queries.NewGetOrdersQuery(filter)
	if err != nil {
		return s.writeError(ctx, err)
	}

	orders, err := s.h.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

func orderFilter(ctx echo.Context) (queries.OrderFilter, error) {
	var (
		filter queries.OrderFilter
		err    error
	)
	if filter.Sender, err = queryID(ctx, "sender"); err != nil {
		return filter, err
	}
	if filter.Shipper, err = queryID(ctx, "shipper"); err != nil {
		return filter, err
	}
	if filter.Package, err = queryID(ctx, "package"); err != nil {
		return filter, err
	}
	if filter.ReceiverNumber, err = queryString(ctx, "receiverNumber"); err != nil {
		return filter, err
	}
	if filter.ReceiverAddress, err = queryString(ctx, "receiverAddress"); err != nil {
		return filter, err
	}

	if raw := ctx.QueryParam("status"); raw != "" {
		status, parseErr := order.ParseStatus(raw)
		if parseErr != nil {
			return filter, parseErr
		}
		filter.Status = &status
	}

	route, err := pickupRoute(ctx)
	if err != nil {
		return filter, err
	}
	filter.Route = route
	return filter, nil
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	o, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(o))
}

// SetOrderShipper handles PUT /api/v1/orders/:id/shipper.
func (s *Server) SetOrderShipper(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}
	var body ShipperAssignment
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	shipper, err := fromOptionalRaw(body.Shipper)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewSetOrderShipperCommand(id, shipper)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.h.SetOrderShipper.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// MarkOrderDelivering handles POST /api/v1/orders/:id/delivering.
func (s *Server) MarkOrderDelivering(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}
	cmd, err := commands.NewMarkOrderDeliveringCommand(id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.h.MarkOrderDelivering.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeliverOrder handles POST /api/v1/orders/:id/delivered.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}
	var body Delivery
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewDeliverOrderCommand(id, body.ArrivalDate)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.h.DeliverOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}
	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.h.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
