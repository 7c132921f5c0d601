// Package ports defines the contracts between the shipment core and its
// infrastructure: repositories bound to a unit of work, the credential hasher
// and the shipment event publisher.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// A sender or pickup point that does not exist is an integrity violation
	// naming the offending column.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row until the surrounding
	// transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByPackageForUpdate locks and returns every order linked to packageID.
	// Callers must already hold the package row lock.
	GetByPackageForUpdate(ctx context.Context, packageID kernel.UUID) ([]*order.Order, error)
}
