// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PackageRepoFactory provides access to package repository within a transaction.
	PackageRepoFactory interface {
		PackageRepository() ports.PackageRepository
	}

	// TopologyRepoFactory provides access to hubs and pickup points within a transaction.
	TopologyRepoFactory interface {
		TopologyRepository() ports.TopologyRepository
	}

	// AccountRepoFactory provides access to account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// OutboxRepoFactory provides access to the shipment change outbox within a transaction.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PackageUoW manages transactions for package-only operations.
	PackageUoW interface {
		TxManager
		PackageRepoFactory
	}

	// PackageUoWFactory creates new package unit of work instances.
	PackageUoWFactory interface {
		Create() PackageUoW
	}

	// ShipmentUoW manages transactions that change a package together with
	// its orders: consolidation and status propagation.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   p, err := uow.PackageRepository().GetForUpdate(ctx, packageID)
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, orderID)
	//   // ... link, then update both
	//
	//   err = uow.Commit(ctx)
	ShipmentUoW interface {
		TxManager
		PackageRepoFactory
		OrderRepoFactory
	}

	// ShipmentUoWFactory creates new unit of work instances for package and order operations.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// TopologyUoW manages transactions for network setup.
	TopologyUoW interface {
		TxManager
		TopologyRepoFactory
	}

	// TopologyUoWFactory creates new topology unit of work instances.
	TopologyUoWFactory interface {
		Create() TopologyUoW
	}

	// AccountUoW manages transactions for account operations.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// OutboxUoW manages transactions for outbox relay and cleanup.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	// OutboxUoWFactory creates new outbox unit of work instances.
	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
