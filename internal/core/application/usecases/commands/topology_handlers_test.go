package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/topology"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateTransitHubCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateTransitHubCommand(kernel.NewUUID(), " North ", "12 Ring Road")
	require.NoError(t, err)

	repo := new(MockTopologyRepository)
	uow := new(MockUoW)
	named := mock.MatchedBy(func(h *topology.TransitHub) bool {
		return h.ID().IsEqual(cmd.ID()) && h.Name() == "North"
	})
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TopologyRepository").Return(repo).Once(),
		repo.On("AddTransitHub", ctx, named).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewCreateTransitHubCommandHandler(topologyUoWFactory{&uowFactory{uow: uow}}).Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreatePickupPointCommandHandler_Handle_UnknownHub(t *testing.T) {
	ctx := t.Context()
	hub := kernel.NewUUID()
	cmd, err := commands.NewCreatePickupPointCommand(kernel.NewUUID(), "A", "1 Market St", hub)
	require.NoError(t, err)

	repo := new(MockTopologyRepository)
	repo.On("AddPickupPoint", ctx, mock.AnythingOfType("*topology.PickupPoint")).
		Return(errs.NewIntegrityViolationError("hub", hub.String())).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TopologyRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	err = commands.NewCreatePickupPointCommandHandler(topologyUoWFactory{&uowFactory{uow: uow}}).Handle(ctx, cmd)

	var integrity *errs.IntegrityViolationError
	require.ErrorAs(t, err, &integrity)
	require.Equal(t, "hub", integrity.ParamName)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
