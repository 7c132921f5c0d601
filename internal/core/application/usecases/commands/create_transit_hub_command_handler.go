package commands

import (
	"context"

	"logistics/internal/core/domain/model/topology"
)

// CreateTransitHubCommandHandler persists a new transit hub. A name already
// taken by another hub is an integrity violation on "name".
type CreateTransitHubCommandHandler struct {
	uowFactory TopologyUoWFactory
}

func NewCreateTransitHubCommandHandler(uowFactory TopologyUoWFactory) CreateTransitHubCommandHandler {
	return CreateTransitHubCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateTransitHubCommandHandler) Handle(ctx context.Context, cmd CreateTransitHubCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hub, err := topology.NewTransitHub(cmd.ID(), cmd.Name(), cmd.Location())
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

	if err = uow.TopologyRepository().AddTransitHub(ctx, hub); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
