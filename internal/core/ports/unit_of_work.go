package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Repositories it hands
// out share one transaction; Commit also writes an outbox message for every
// order and package aggregate they stored.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error

	// Rollback is a no-op after a successful Commit, so it is safe to defer.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	PackageRepository() PackageRepository
	TopologyRepository() TopologyRepository
	AccountRepository() AccountRepository
	OutboxRepository() OutboxRepository
}
