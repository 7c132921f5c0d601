package ports

import (
	"context"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for accounts.
type AccountRepository interface {
	// Add fails with an integrity violation on "email" for a duplicate address.
	Add(ctx context.Context, aggregate *account.Account) error
	Update(ctx context.Context, aggregate *account.Account) error
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetForUpdate retrieves an account and locks its row until the
	// surrounding transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*account.Account, error)

	GetByEmail(ctx context.Context, email string) (*account.Account, error)

	// Delete fails with an integrity violation while an order or a package
	// still references the account.
	Delete(ctx context.Context, id kernel.UUID) error
}
