package cmd

import (
	"log/slog"

	"logistics/internal/adapters/in/http"
	"logistics/internal/adapters/in/seed"
	"logistics/internal/adapters/out/crypto"
	"logistics/internal/adapters/out/kafka"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/redis"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/ports"
	"logistics/internal/jobs"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	hasher     ports.PasswordHasher
	topology   ports.TopologyReader
	publisher  *kafka.Publisher
	logger     *slog.Logger
}

// NewCompositionRoot wires the adapters. The topology cache is used only when
// REDIS_ADDR is set, the kafka publisher only when KAFKA_HOST is set.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	c := CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		hasher:     crypto.NewBcryptHasher(config.BcryptCost),
		logger:     logger,
	}

	c.topology = c.uowFactory.Create().TopologyRepository()
	if config.RedisAddr != "" {
		client := goredis.NewClient(&goredis.Options{Addr: config.RedisAddr})
		c.topology = redis.NewCachedTopologyReader(c.topology, client, config.TopologyCacheTTL, logger)
	}

	if config.KafkaHost != "" {
		c.publisher = kafka.NewPublisher(config.KafkaHost, config.KafkaShipmentChangedTopic)
	}

	return c
}

// Close releases the broker connection.
func (c *CompositionRoot) Close() error {
	if c.publisher == nil {
		return nil
	}
	return c.publisher.Close()
}

func (c *CompositionRoot) CreateCreateTransitHubCommandHandler() commands.CreateTransitHubCommandHandler {
	return commands.NewCreateTransitHubCommandHandler(c.topologyUoWFactory())
}

func (c *CompositionRoot) CreateCreatePickupPointCommandHandler() commands.CreatePickupPointCommandHandler {
	return commands.NewCreatePickupPointCommandHandler(c.topologyUoWFactory())
}

func (c *CompositionRoot) CreateRegisterAccountCommandHandler() commands.RegisterAccountCommandHandler {
	return commands.NewRegisterAccountCommandHandler(c.accountUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateChangePasswordCommandHandler() commands.ChangePasswordCommandHandler {
	return commands.NewChangePasswordCommandHandler(c.accountUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateDeleteAccountCommandHandler() commands.DeleteAccountCommandHandler {
	return commands.NewDeleteAccountCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetOrderShipperCommandHandler() commands.SetOrderShipperCommandHandler {
	return commands.NewSetOrderShipperCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkOrderDeliveringCommandHandler() commands.MarkOrderDeliveringCommandHandler {
	return commands.NewMarkOrderDeliveringCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreatePackageCommandHandler() commands.CreatePackageCommandHandler {
	return commands.NewCreatePackageCommandHandler(c.packageUoWFactory())
}

func (c *CompositionRoot) CreateSetPackageShipperCommandHandler() commands.SetPackageShipperCommandHandler {
	return commands.NewSetPackageShipperCommandHandler(c.packageUoWFactory())
}

func (c *CompositionRoot) CreateAddOrderToPackageCommandHandler() commands.AddOrderToPackageCommandHandler {
	return commands.NewAddOrderToPackageCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateAdvancePackageCommandHandler() commands.AdvancePackageCommandHandler {
	return commands.NewAdvancePackageCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() commands.RelayOutboxCommandHandler {
	return commands.NewRelayOutboxCommandHandler(c.outboxUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreatePurgeOutboxCommandHandler() commands.PurgeOutboxCommandHandler {
	return commands.NewPurgeOutboxCommandHandler(c.outboxUoWFactory())
}

func (c *CompositionRoot) CreateGetTransitHubQueryHandler() queries.GetTransitHubQueryHandler {
	return queries.NewGetTransitHubQueryHandler(c.topology)
}

func (c *CompositionRoot) CreateGetPickupPointQueryHandler() queries.GetPickupPointQueryHandler {
	return queries.NewGetPickupPointQueryHandler(c.topology)
}

func (c *CompositionRoot) CreateGetPickupPointsByHubQueryHandler() queries.GetPickupPointsByHubQueryHandler {
	return queries.NewGetPickupPointsByHubQueryHandler(c.topology)
}

func (c *CompositionRoot) CreateGetAccountQueryHandler() queries.GetAccountQueryHandler {
	return queries.NewGetAccountQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPackagesQueryHandler() queries.GetPackagesQueryHandler {
	return queries.NewGetPackagesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPackageQueryHandler() queries.GetPackageQueryHandler {
	return queries.NewGetPackageQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRevenueQueryHandler() queries.GetRevenueQueryHandler {
	return queries.NewGetRevenueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(http.Handlers{
		CreateTransitHub:  c.CreateCreateTransitHubCommandHandler(),
		CreatePickupPoint: c.CreateCreatePickupPointCommandHandler(),
		RegisterAccount:   c.CreateRegisterAccountCommandHandler(),
		ChangePassword:    c.CreateChangePasswordCommandHandler(),
		DeleteAccount:     c.CreateDeleteAccountCommandHandler(),

		CreateOrder:         c.CreateCreateOrderCommandHandler(),
		SetOrderShipper:     c.CreateSetOrderShipperCommandHandler(),
		MarkOrderDelivering: c.CreateMarkOrderDeliveringCommandHandler(),
		DeliverOrder:        c.CreateDeliverOrderCommandHandler(),
		CancelOrder:         c.CreateCancelOrderCommandHandler(),

		CreatePackage:     c.CreateCreatePackageCommandHandler(),
		SetPackageShipper: c.CreateSetPackageShipperCommandHandler(),
		AdvancePackage:    c.CreateAdvancePackageCommandHandler(),
		AddOrderToPackage: c.CreateAddOrderToPackageCommandHandler(),

		GetTransitHub:        c.CreateGetTransitHubQueryHandler(),
		GetPickupPoint:       c.CreateGetPickupPointQueryHandler(),
		GetPickupPointsByHub: c.CreateGetPickupPointsByHubQueryHandler(),
		GetAccount:           c.CreateGetAccountQueryHandler(),
		GetOrders:            c.CreateGetOrdersQueryHandler(),
		GetOrder:             c.CreateGetOrderQueryHandler(),
		GetPackages:          c.CreateGetPackagesQueryHandler(),
		GetPackage:           c.CreateGetPackageQueryHandler(),
		GetRevenue:           c.CreateGetRevenueQueryHandler(),
	}, c.logger.With("component", "http"))
}

func (c *CompositionRoot) CreateSeedLoader() *seed.Loader {
	return seed.NewLoader(seed.Handlers{
		CreateTransitHub:    c.CreateCreateTransitHubCommandHandler(),
		CreatePickupPoint:   c.CreateCreatePickupPointCommandHandler(),
		RegisterAccount:     c.CreateRegisterAccountCommandHandler(),
		CreatePackage:       c.CreateCreatePackageCommandHandler(),
		CreateOrder:         c.CreateCreateOrderCommandHandler(),
		AddOrderToPackage:   c.CreateAddOrderToPackageCommandHandler(),
		AdvancePackage:      c.CreateAdvancePackageCommandHandler(),
		SetOrderShipper:     c.CreateSetOrderShipperCommandHandler(),
		MarkOrderDelivering: c.CreateMarkOrderDeliveringCommandHandler(),
		DeliverOrder:        c.CreateDeliverOrderCommandHandler(),
		CancelOrder:         c.CreateCancelOrderCommandHandler(),

		GetTransitHub:  c.CreateGetTransitHubQueryHandler(),
		GetPickupPoint: c.CreateGetPickupPointQueryHandler(),
		GetAccount:     c.CreateGetAccountQueryHandler(),
	}, c.logger.With("component", "seed"))
}

// CreateJobManager returns nil when no broker is configured: with nowhere to
// relay to, the outbox only accumulates.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	if c.publisher == nil {
		return nil
	}
	return jobs.NewJobManager(
		c.CreateRelayOutboxCommandHandler(),
		c.CreatePurgeOutboxCommandHandler(),
		c.config.OutboxRelayBatch,
		c.config.OutboxRetention,
		c.logger,
	)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) packageUoWFactory() commands.PackageUoWFactory {
	return FuncPackageUoWFactory(func() commands.PackageUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) topologyUoWFactory() commands.TopologyUoWFactory {
	return FuncTopologyUoWFactory(func() commands.TopologyUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) outboxUoWFactory() commands.OutboxUoWFactory {
	return FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPackageUoWFactory func() commands.PackageUoW

func (f FuncPackageUoWFactory) Create() commands.PackageUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncTopologyUoWFactory func() commands.TopologyUoW

func (f FuncTopologyUoWFactory) Create() commands.TopologyUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
