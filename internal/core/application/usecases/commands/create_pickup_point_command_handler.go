package commands

import (
	"context"

	"logistics/internal/core/domain/model/topology"
)

// CreatePickupPointCommandHandler persists a new pickup point.
// An unknown hub surfaces as an integrity violation on "hub".
type CreatePickupPointCommandHandler struct {
	uowFactory TopologyUoWFactory
}

func NewCreatePickupPointCommandHandler(uowFactory TopologyUoWFactory) CreatePickupPointCommandHandler {
	return CreatePickupPointCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreatePickupPointCommandHandler) Handle(ctx context.Context, cmd CreatePickupPointCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	point, err := topology.NewPickupPoint(cmd.ID(), cmd.Name(), cmd.Location(), cmd.Hub())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TopologyRepository().AddPickupPoint(ctx, point); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
