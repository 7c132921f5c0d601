package queries_test

import (
	"context"
	"testing"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/topology"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTopologyReader struct {
	mock.Mock
}

func (m *MockTopologyReader) GetTransitHub(ctx context.Context, id kernel.UUID) (*topology.TransitHub, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*topology.TransitHub), args.Error(1)
}

func (m *MockTopologyReader) GetTransitHubByName(ctx context.Context, name string) (*topology.TransitHub, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*topology.TransitHub), args.Error(1)
}

func (m *MockTopologyReader) GetPickupPoint(ctx context.Context, id kernel.UUID) (*topology.PickupPoint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*topology.PickupPoint), args.Error(1)
}

func (m *MockTopologyReader) GetPickupPointByName(ctx context.Context, name string) (*topology.PickupPoint, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*topology.PickupPoint), args.Error(1)
}

func (m *MockTopologyReader) GetPickupPointsByHub(ctx context.Context, hub kernel.UUID) ([]*topology.PickupPoint, error) {
	args := m.Called(ctx, hub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*topology.PickupPoint), args.Error(1)
}

func TestGetTransitHubQueryHandler_ByName(t *testing.T) {
	ctx := context.Background()
	hub, err := topology.NewTransitHub(kernel.NewUUID(), "North", "Ha Noi")
	require.NoError(t, err)

	reader := &MockTopologyReader{}
	reader.On("GetTransitHubByName", ctx, "North").Return(hub, nil)

	query, err := queries.NewGetTransitHubByNameQuery(" North ")
	require.NoError(t, err)

	resp, err := queries.NewGetTransitHubQueryHandler(reader).Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, hub.ID(), resp.ID)
	assert.Equal(t, "Ha Noi", resp.Location)
	reader.AssertExpectations(t)
}

func TestGetPickupPointQueryHandler_NotFound(t *testing.T) {
	ctx := context.Background()
	id := kernel.NewUUID()

	reader := &MockTopologyReader{}
	reader.On("GetPickupPoint", ctx, id).Return(nil, errs.NewObjectNotFoundError("pickupPoint", id))

	query, err := queries.NewGetPickupPointQuery(id)
	require.NoError(t, err)

	_, err = queries.NewGetPickupPointQueryHandler(reader).Handle(ctx, query)
	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestGetPickupPointsByHubQueryHandler(t *testing.T) {
	ctx := context.Background()
	hub, err := topology.NewTransitHub(kernel.NewUUID(), "South", "Ho Chi Minh")
	require.NoError(t, err)
	first, err := topology.NewPickupPoint(kernel.NewUUID(), "C", "c", hub.ID())
	require.NoError(t, err)
	second, err := topology.NewPickupPoint(kernel.NewUUID(), "D", "d", hub.ID())
	require.NoError(t, err)

	t.Run("lists points", func(t *testing.T) {
		reader := &MockTopologyReader{}
		reader.On("GetTransitHub", ctx, hub.ID()).Return(hub, nil)
		reader.On("GetPickupPointsByHub", ctx, hub.ID()).Return([]*topology.PickupPoint{first, second}, nil)

		query, err := queries.NewGetPickupPointsByHubQuery(hub.ID())
		require.NoError(t, err)

		resp, err := queries.NewGetPickupPointsByHubQueryHandler(reader).Handle(ctx, query)
		require.NoError(t, err)
		require.Len(t, resp, 2)
		assert.Equal(t, "C", resp[0].Name)
		assert.Equal(t, hub.ID(), resp[1].Hub)
	})

	t.Run("unknown hub", func(t *testing.T) {
		unknown := kernel.NewUUID()
		reader := &MockTopologyReader{}
		reader.On("GetTransitHub", ctx, unknown).Return(nil, errs.NewObjectNotFoundError("transitHub", unknown))

		query, err := queries.NewGetPickupPointsByHubQuery(unknown)
		require.NoError(t, err)

		_, err = queries.NewGetPickupPointsByHubQueryHandler(reader).Handle(ctx, query)
		var notFound *errs.ObjectNotFoundError
		require.ErrorAs(t, err, &notFound)
		reader.AssertNotCalled(t, "GetPickupPointsByHub", mock.Anything, mock.Anything)
	})
}
