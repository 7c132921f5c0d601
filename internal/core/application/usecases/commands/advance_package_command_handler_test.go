package commands_test

import (
	"errors"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/pack"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var departure = time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC)

func linkedOrders(t *testing.T, p *pack.Package, n int) []*order.Order {
	t.Helper()

	orders := make([]*order.Order, 0, n)
	for range n {
		o := newPendingOrder(t, 1)
		require.NoError(t, services.NewConsolidator().Link(o, p))
		orders = append(orders, o)
	}
	return orders
}

func TestAdvancePackageCommandHandler_Handle_PropagatesToEveryOrder(t *testing.T) {
	ctx := t.Context()
	p := newPendingPackage(t)
	orders := linkedOrders(t, p, 3)

	uow := new(MockUoW)
	packageRepo := new(MockPackageRepository)
	orderRepo := new(MockOrderRepository)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		packageRepo.On("GetForUpdate", ctx, p.ID()).Return(p, nil).Once(),
		orderRepo.On("GetByPackageForUpdate", ctx, p.ID()).Return(orders, nil).Once(),
		packageRepo.On("Update", ctx, p).Return(nil).Once(),
		orderRepo.On("Update", ctx, orders[0]).Return(nil).Once(),
		orderRepo.On("Update", ctx, orders[1]).Return(nil).Once(),
		orderRepo.On("Update", ctx, orders[2]).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewAdvancePackageCommand(p.ID(), pack.Delivering1, departure)
	require.NoError(t, err)

	err = commands.NewAdvancePackageCommandHandler(shipmentUoWFactory{&uowFactory{uow: uow}}).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, pack.Delivering1, p.Status())
	require.NotNil(t, p.TransitDate())
	assert.True(t, departure.Equal(*p.TransitDate()))
	for _, o := range orders {
		assert.Equal(t, order.Delivering, o.Status())
	}
	uow.AssertExpectations(t)
	packageRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestAdvancePackageCommandHandler_Handle_SkipsTerminalOrders(t *testing.T) {
	ctx := t.Context()
	p := newPendingPackage(t)
	orders := linkedOrders(t, p, 2)
	require.NoError(t, orders[1].Cancel())

	uow := new(MockUoW)
	packageRepo := new(MockPackageRepository)
	orderRepo := new(MockOrderRepository)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PackageRepository").Return(packageRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	packageRepo.On("GetForUpdate", ctx, p.ID()).Return(p, nil).Once()
	orderRepo.On("GetByPackageForUpdate", ctx, p.ID()).Return(orders, nil).Once()
	packageRepo.On("Update", ctx, p).Return(nil).Once()
	orderRepo.On("Update", ctx, orders[0]).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewAdvancePackageCommand(p.ID(), pack.Delivering1, departure)
	require.NoError(t, err)

	err = commands.NewAdvancePackageCommandHandler(shipmentUoWFactory{&uowFactory{uow: uow}}).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, orders[1].Status())
	orderRepo.AssertNotCalled(t, "Update", ctx, orders[1])
	orderRepo.AssertExpectations(t)
}

func TestAdvancePackageCommandHandler_Handle_OrderUpdateFailureRollsBackEverything(t *testing.T) {
	ctx := t.Context()
	p := newPendingPackage(t)
	orders := linkedOrders(t, p, 3)

	uow := new(MockUoW)
	packageRepo := new(MockPackageRepository)
	orderRepo := new(MockOrderRepository)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		packageRepo.On("GetForUpdate", ctx, p.ID()).Return(p, nil).Once(),
		orderRepo.On("GetByPackageForUpdate", ctx, p.ID()).Return(orders, nil).Once(),
		packageRepo.On("Update", ctx, p).Return(nil).Once(),
		orderRepo.On("Update", ctx, orders[0]).Return(nil).Once(),
		orderRepo.On("Update", ctx, orders[1]).Return(errors.New("deadlock detected")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewAdvancePackageCommand(p.ID(), pack.Delivering1, departure)
	require.NoError(t, err)

	err = commands.NewAdvancePackageCommandHandler(shipmentUoWFactory{&uowFactory{uow: uow}}).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPartialFailure)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	orderRepo.AssertNotCalled(t, "Update", ctx, orders[2])
	uow.AssertExpectations(t)
}

func TestAdvancePackageCommandHandler_Handle_SkippingAStageIsRejected(t *testing.T) {
	ctx := t.Context()
	p := newPendingPackage(t)
	orders := linkedOrders(t, p, 1)

	uow := new(MockUoW)
	packageRepo := new(MockPackageRepository)
	orderRepo := new(MockOrderRepository)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PackageRepository").Return(packageRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	packageRepo.On("GetForUpdate", ctx, p.ID()).Return(p, nil).Once()
	orderRepo.On("GetByPackageForUpdate", ctx, p.ID()).Return(orders, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewAdvancePackageCommand(p.ID(), pack.Delivering2, departure)
	require.NoError(t, err)

	err = commands.NewAdvancePackageCommandHandler(shipmentUoWFactory{&uowFactory{uow: uow}}).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, pack.Pending, p.Status())
	assert.Equal(t, order.Pending, orders[0].Status())
	packageRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAdvancePackageCommandHandler_Handle_CommitFailure(t *testing.T) {
	ctx := t.Context()
	p := newPendingPackage(t)

	uow := new(MockUoW)
	packageRepo := new(MockPackageRepository)
	orderRepo := new(MockOrderRepository)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PackageRepository").Return(packageRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	packageRepo.On("GetForUpdate", ctx, p.ID()).Return(p, nil).Once()
	orderRepo.On("GetByPackageForUpdate", ctx, p.ID()).Return([]*order.Order{}, nil).Once()
	packageRepo.On("Update", ctx, p).Return(nil).Once()
	uow.On("Commit", ctx).Return(errors.New("connection lost")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewAdvancePackageCommand(p.ID(), pack.Delivering1, departure)
	require.NoError(t, err)

	err = commands.NewAdvancePackageCommandHandler(shipmentUoWFactory{&uowFactory{uow: uow}}).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPartialFailure)
}
