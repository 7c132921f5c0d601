// Package postgres provides the GORM-based Unit of Work, the schema migration
// and the transactional outbox of shipment changes.
//
// Every repository handed out by a GormUnitOfWork shares its transaction.
// Order and package aggregates stored through them are tracked, and Commit
// writes one outbox message per tracked aggregate inside the same
// transaction, so a change and its notification are durable together.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	p, err := uow.PackageRepository().GetForUpdate(ctx, packageID)
//	...
//	if err := uow.PackageRepository().Update(ctx, p); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
package postgres

import (
	"context"
	"fmt"
	"time"

	"logistics/internal/adapters/out/postgres/accountrepo"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/outboxrepo"
	"logistics/internal/adapters/out/postgres/packrepo"
	"logistics/internal/adapters/out/postgres/topologyrepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate stored during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
type GormUnitOfWorkFactory struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Create produces a new UnitOfWork with its own transaction state and tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		now:               f.now,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the
// aggregates changed in it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	now               func() time.Time
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it twice is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit writes the outbox messages of the tracked aggregates and commits.
// If either step fails the transaction is rolled back and nothing of it is
// persisted.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	tx := uow.tx
	uow.tx = nil
	defer func() { uow.trackedAggregates = uow.trackedAggregates[:0] }()

	messages, err := uow.outboxMessages()
	if err == nil {
		err = outboxrepo.NewGormOutboxRepository(tx).Add(ctx, messages...)
	}
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("write outbox: %w", err)
	}

	return tx.Commit().Error
}

// Rollback discards the transaction. Without an active transaction (never
// begun, or already committed) it does nothing, so it can always be deferred.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	uow.trackedAggregates = uow.trackedAggregates[:0]
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) PackageRepository() ports.PackageRepository {
	return packrepo.NewGormPackageRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) TopologyRepository() ports.TopologyRepository {
	return topologyrepo.NewGormTopologyRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) AccountRepository() ports.AccountRepository {
	return accountrepo.NewGormAccountRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate registers an aggregate stored within this unit of work.
// Repositories call it after a successful Add or Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// conn is the active transaction, or the plain connection outside of one.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// outboxMessages keeps only the last state of each aggregate, in the order
// the aggregates were first stored.
func (uow *GormUnitOfWork) outboxMessages() ([]ports.OutboxMessage, error) {
	latest := make(map[kernel.UUID]any, len(uow.trackedAggregates))
	order := make([]kernel.UUID, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		if _, seen := latest[t.ID]; !seen {
			order = append(order, t.ID)
		}
		latest[t.ID] = t.Aggregate
	}

	at := uow.now()
	messages := make([]ports.OutboxMessage, 0, len(order))
	for _, id := range order {
		msg, ok, err := messageFor(latest[id], at)
		if err != nil {
			return nil, err
		}
		if ok {
			messages = append(messages, msg)
		}
	}
	return messages, nil
}
