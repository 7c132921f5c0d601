package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/packrepo"
	"logistics/internal/adapters/out/postgres/pgtest"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/pack"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence against a
// PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	network    pgtest.Network
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	network, err := suite.database.SeedNetwork(context.Background())
	suite.Require().NoError(err)
	suite.network = network

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.database.DB, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	weight, err := kernel.NewWeight(3.25)
	suite.Require().NoError(err)
	route, err := kernel.NewRoute(suite.network.PointA, suite.network.PointC)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), order.Details{
		Sender:          suite.network.Customer,
		Weight:          weight,
		ReceiverNumber:  "0912345678",
		ReceiverAddress: "5 Ly Thuong Kiet",
		Route:           route,
		Charge:          42.5,
		SendDate:        time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	})
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestPackage() *pack.Package {
	route, err := kernel.NewRoute(suite.network.PointA, suite.network.PointC)
	suite.Require().NoError(err)
	p, err := pack.NewPackage(kernel.NewUUID(), route, nil)
	suite.Require().NoError(err)

	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()
	suite.Require().NoError(packrepo.NewGormPackageRepository(suite.database.DB, tracker).Add(context.Background(), p))
	return p
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_RoundTripsEveryField() {
	ctx := context.Background()
	o := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", o.ID(), o).Return().Once()

	suite.Require().NoError(suite.repository.Add(ctx, o))

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(stored.ID().IsEqual(o.ID()))
	suite.True(stored.Sender().IsEqual(suite.network.Customer))
	suite.InDelta(3.25, stored.Weight().Float64(), 1e-9)
	suite.Equal("0912345678", stored.ReceiverNumber())
	suite.Equal("5 Ly Thuong Kiet", stored.ReceiverAddress())
	suite.True(stored.Route().From().IsEqual(suite.network.PointA))
	suite.True(stored.Route().To().IsEqual(suite.network.PointC))
	suite.InDelta(42.5, stored.Charge(), 1e-9)
	suite.True(o.SendDate().Equal(stored.SendDate()))
	suite.Equal(order.Pending, stored.Status())
	suite.Nil(stored.Package())
	suite.Nil(stored.Shipper())
	suite.Nil(stored.ArrivalDate())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StoresShipperAndClearsIt() {
	ctx := context.Background()
	o := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	shipper := suite.network.Shipper
	suite.Require().NoError(o.SetShipper(&shipper))
	suite.Require().NoError(o.MarkDelivering())
	suite.Require().NoError(suite.repository.Update(ctx, o))

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(stored.Shipper())
	suite.True(stored.Shipper().IsEqual(shipper))
	suite.Equal(order.Delivering, stored.Status())

	suite.Require().NoError(o.SetShipper(nil))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	stored, err = suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Nil(stored.Shipper())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_DeliveredKeepsArrivalDate() {
	ctx := context.Background()
	o := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	arrival := time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC)
	suite.Require().NoError(o.Deliver(arrival))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, stored.Status())
	suite.Require().NotNil(stored.ArrivalDate())
	suite.True(arrival.Equal(*stored.ArrivalDate()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFound() {
	err := suite.repository.Update(context.Background(), suite.createTestOrder())

	suite.ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnknownSender_IsIntegrityViolation() {
	o := suite.createTestOrder()
	suite.Require().NoError(suite.database.DB.Exec("DELETE FROM accounts WHERE id = ?", suite.network.Customer.String()).Error)

	err := suite.repository.Add(context.Background(), o)

	var integrity *errs.IntegrityViolationError
	suite.Require().ErrorAs(err, &integrity)
	suite.Equal("sender", integrity.ParamName)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByPackageForUpdate_ReturnsOnlyLinkedOrders() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()
	p := suite.createTestPackage()

	linked := []*order.Order{suite.createTestOrder(), suite.createTestOrder()}
	for _, o := range linked {
		suite.Require().NoError(o.LinkPackage(p.ID()))
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrder()))

	tx := suite.database.DB.Begin()
	defer tx.Rollback()

	orders, err := orderrepo.NewGormOrderRepository(tx, suite.tracker).GetByPackageForUpdate(ctx, p.ID())

	suite.Require().NoError(err)
	suite.Len(orders, 2)
	for _, o := range orders {
		suite.Require().NotNil(o.Package())
		suite.True(o.Package().IsEqual(p.ID()))
	}
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration suite needs docker")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
