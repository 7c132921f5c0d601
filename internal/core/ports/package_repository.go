package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/pack"
)

// PackageRepository defines the persistence contract for package aggregates.
type PackageRepository interface {
	Add(ctx context.Context, aggregate *pack.Package) error
	Update(ctx context.Context, aggregate *pack.Package) error
	Get(ctx context.Context, id kernel.UUID) (*pack.Package, error)

	// GetForUpdate retrieves a package and locks its row. Every operation that
	// touches a package and its orders takes this lock first so concurrent
	// calls on one package serialize.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*pack.Package, error)
}
