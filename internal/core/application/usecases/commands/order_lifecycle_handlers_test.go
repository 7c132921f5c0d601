package commands_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// expectOrderChange wires the lock, update and commit sequence of a single
// order change. Update and Commit are only expected when stored is true.
func expectOrderChange(t *testing.T, o *order.Order, stored bool) (*MockUoW, *MockOrderRepository) {
	t.Helper()
	ctx := t.Context()

	repo := new(MockOrderRepository)
	uow := new(MockUoW)

	calls := []*mock.Call{
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
	}
	if stored {
		calls = append(calls,
			repo.On("Update", ctx, o).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
		)
	}
	calls = append(calls, uow.On("Rollback", ctx).Return(nil).Once())
	mock.InOrder(calls...)

	return uow, repo
}

func TestDeliverOrderCommandHandler_Handle(t *testing.T) {
	arrival := time.Date(2024, 3, 4, 15, 0, 0, 0, time.UTC)

	t.Run("pending order becomes delivered with arrival date", func(t *testing.T) {
		o := newPendingOrder(t, 1)
		uow, repo := expectOrderChange(t, o, true)

		cmd, err := commands.NewDeliverOrderCommand(o.ID(), arrival)
		require.NoError(t, err)

		err = commands.NewDeliverOrderCommandHandler(orderUoWFactory{&uowFactory{uow: uow}}).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
		require.NotNil(t, o.ArrivalDate())
		assert.True(t, arrival.Equal(*o.ArrivalDate()))
		uow.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("cancelled order is rejected and not stored", func(t *testing.T) {
		o := newPendingOrder(t, 1)
		require.NoError(t, o.Cancel())
		uow, repo := expectOrderChange(t, o, false)

		cmd, err := commands.NewDeliverOrderCommand(o.ID(), arrival)
		require.NoError(t, err)

		err = commands.NewDeliverOrderCommandHandler(orderUoWFactory{&uowFactory{uow: uow}}).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Nil(t, o.ArrivalDate())
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("unknown order surfaces not found", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()

		repo := new(MockOrderRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		repo.On("GetForUpdate", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id)).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		cmd, err := commands.NewDeliverOrderCommand(id, arrival)
		require.NoError(t, err)

		err = commands.NewDeliverOrderCommandHandler(orderUoWFactory{&uowFactory{uow: uow}}).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		uow.AssertExpectations(t)
	})
}

func TestCancelOrderCommandHandler_Handle(t *testing.T) {
	t.Run("delivering order is cancelled", func(t *testing.T) {
		o := newPendingOrder(t, 1)
		require.NoError(t, o.MarkDelivering())
		uow, _ := expectOrderChange(t, o, true)

		cmd, err := commands.NewCancelOrderCommand(o.ID())
		require.NoError(t, err)

		err = commands.NewCancelOrderCommandHandler(orderUoWFactory{&uowFactory{uow: uow}}).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
		uow.AssertExpectations(t)
	})

	t.Run("delivered order cannot be cancelled", func(t *testing.T) {
		o := newPendingOrder(t, 1)
		require.NoError(t, o.Deliver(time.Now()))
		uow, repo := expectOrderChange(t, o, false)

		cmd, err := commands.NewCancelOrderCommand(o.ID())
		require.NoError(t, err)

		err = commands.NewCancelOrderCommandHandler(orderUoWFactory{&uowFactory{uow: uow}}).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Delivered, o.Status())
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestMarkOrderDeliveringCommandHandler_Handle(t *testing.T) {
	t.Run("pending order starts delivering", func(t *testing.T) {
		o := newPendingOrder(t, 1)
		uow, _ := expectOrderChange(t, o, true)

		cmd, err := commands.NewMarkOrderDeliveringCommand(o.ID())
		require.NoError(t, err)

		err = commands.NewMarkOrderDeliveringCommandHandler(orderUoWFactory{&uowFactory{uow: uow}}).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Delivering, o.Status())
	})

	t.Run("already delivering is an invalid transition", func(t *testing.T) {
		o := newPendingOrder(t, 1)
		require.NoError(t, o.MarkDelivering())
		uow, _ := expectOrderChange(t, o, false)

		cmd, err := commands.NewMarkOrderDeliveringCommand(o.ID())
		require.NoError(t, err)

		err = commands.NewMarkOrderDeliveringCommandHandler(orderUoWFactory{&uowFactory{uow: uow}}).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestSetOrderShipperCommandHandler_Handle(t *testing.T) {
	t.Run("assigns a shipper without touching status", func(t *testing.T) {
		o := newPendingOrder(t, 1)
		uow, _ := expectOrderChange(t, o, true)
		shipper := kernel.NewUUID()

		cmd, err := commands.NewSetOrderShipperCommand(o.ID(), &shipper)
		require.NoError(t, err)

		err = commands.NewSetOrderShipperCommandHandler(orderUoWFactory{&uowFactory{uow: uow}}).Handle(t.Context(), cmd)

		require.NoError(t, err)
		require.NotNil(t, o.Shipper())
		assert.True(t, o.Shipper().IsEqual(shipper))
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("nil clears the shipper", func(t *testing.T) {
		o := newPendingOrder(t, 1)
		shipper := kernel.NewUUID()
		require.NoError(t, o.SetShipper(&shipper))
		uow, _ := expectOrderChange(t, o, true)

		cmd, err := commands.NewSetOrderShipperCommand(o.ID(), nil)
		require.NoError(t, err)

		err = commands.NewSetOrderShipperCommandHandler(orderUoWFactory{&uowFactory{uow: uow}}).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Nil(t, o.Shipper())
	})
}
