package commands_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/pack"
	"logistics/internal/core/domain/model/topology"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetByPackageForUpdate(ctx context.Context, packageID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, packageID)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockPackageRepository struct{ mock.Mock }

func (m *MockPackageRepository) Add(ctx context.Context, p *pack.Package) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPackageRepository) Update(ctx context.Context, p *pack.Package) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPackageRepository) Get(ctx context.Context, id kernel.UUID) (*pack.Package, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*pack.Package)
	return p, args.Error(1)
}

func (m *MockPackageRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*pack.Package, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*pack.Package)
	return p, args.Error(1)
}

type MockTopologyRepository struct{ mock.Mock }

func (m *MockTopologyRepository) GetTransitHub(ctx context.Context, id kernel.UUID) (*topology.TransitHub, error) {
	args := m.Called(ctx, id)
	h, _ := args.Get(0).(*topology.TransitHub)
	return h, args.Error(1)
}

func (m *MockTopologyRepository) GetTransitHubByName(ctx context.Context, name string) (*topology.TransitHub, error) {
	args := m.Called(ctx, name)
	h, _ := args.Get(0).(*topology.TransitHub)
	return h, args.Error(1)
}

func (m *MockTopologyRepository) GetPickupPoint(ctx context.Context, id kernel.UUID) (*topology.PickupPoint, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*topology.PickupPoint)
	return p, args.Error(1)
}

func (m *MockTopologyRepository) GetPickupPointByName(ctx context.Context, name string) (*topology.PickupPoint, error) {
	args := m.Called(ctx, name)
	p, _ := args.Get(0).(*topology.PickupPoint)
	return p, args.Error(1)
}

func (m *MockTopologyRepository) GetPickupPointsByHub(ctx context.Context, hub kernel.UUID) ([]*topology.PickupPoint, error) {
	args := m.Called(ctx, hub)
	points, _ := args.Get(0).([]*topology.PickupPoint)
	return points, args.Error(1)
}

func (m *MockTopologyRepository) AddTransitHub(ctx context.Context, hub *topology.TransitHub) error {
	args := m.Called(ctx, hub)
	return args.Error(0)
}

func (m *MockTopologyRepository) AddPickupPoint(ctx context.Context, point *topology.PickupPoint) error {
	args := m.Called(ctx, point)
	return args.Error(0)
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*account.Account)
	return a, args.Error(1)
}

func (m *MockAccountRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*account.Account)
	return a, args.Error(1)
}

func (m *MockAccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	args := m.Called(ctx, email)
	a, _ := args.Get(0).(*account.Account)
	return a, args.Error(1)
}

func (m *MockAccountRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, messages ...ports.OutboxMessage) error {
	args := m.Called(ctx, messages)
	return args.Error(0)
}

func (m *MockOutboxRepository) LockUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	messages, _ := args.Get(0).([]ports.OutboxMessage)
	return messages, args.Error(1)
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, at time.Time, ids ...kernel.UUID) error {
	args := m.Called(ctx, at, ids)
	return args.Error(0)
}

func (m *MockOutboxRepository) DeletePublishedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW satisfies every unit of work interface the handlers ask for.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) PackageRepository() ports.PackageRepository {
	args := m.Called()
	return args.Get(0).(ports.PackageRepository)
}

func (m *MockUoW) TopologyRepository() ports.TopologyRepository {
	args := m.Called()
	return args.Get(0).(ports.TopologyRepository)
}

func (m *MockUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

// uowFactory hands out the same MockUoW for every factory interface.
type uowFactory struct {
	uow     *MockUoW
	created int
}

func (f *uowFactory) next() *MockUoW {
	f.created++
	return f.uow
}

type orderUoWFactory struct{ *uowFactory }

func (f orderUoWFactory) Create() commands.OrderUoW {
	return f.next()
}

type packageUoWFactory struct{ *uowFactory }

func (f packageUoWFactory) Create() commands.PackageUoW {
	return f.next()
}

type shipmentUoWFactory struct{ *uowFactory }

func (f shipmentUoWFactory) Create() commands.ShipmentUoW {
	return f.next()
}

type topologyUoWFactory struct{ *uowFactory }

func (f topologyUoWFactory) Create() commands.TopologyUoW {
	return f.next()
}

type accountUoWFactory struct{ *uowFactory }

func (f accountUoWFactory) Create() commands.AccountUoW {
	return f.next()
}

type outboxUoWFactory struct{ *uowFactory }

func (f outboxUoWFactory) Create() commands.OutboxUoW {
	return f.next()
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(ctx context.Context, plaintext string) (string, error) {
	args := m.Called(ctx, plaintext)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Verify(ctx context.Context, plaintext, digest string) (bool, error) {
	args := m.Called(ctx, plaintext, digest)
	return args.Bool(0), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, messages ...ports.OutboxMessage) error {
	args := m.Called(ctx, messages)
	return args.Error(0)
}

func newPendingOrder(t *testing.T, weight float64) *order.Order {
	t.Helper()

	w, err := kernel.NewWeight(weight)
	require.NoError(t, err)
	route, err := kernel.NewRoute(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), order.Details{
		Sender:          kernel.NewUUID(),
		Weight:          w,
		ReceiverNumber:  "0912345678",
		ReceiverAddress: "5 Ly Thuong Kiet",
		Route:           route,
		Charge:          10,
		SendDate:        time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return o
}

func newPendingPackage(t *testing.T) *pack.Package {
	t.Helper()

	route, err := kernel.NewRoute(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	p, err := pack.NewPackage(kernel.NewUUID(), route, nil)
	require.NoError(t, err)
	return p
}
