package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrAddOrderToPackageCommandIsNotConstructed = errors.New(
	"AddOrderToPackageCommand must be created via NewAddOrderToPackageCommand constructor",
)

// AddOrderToPackageCommand consolidates an order into a package.
//
// Example:
//
//	cmd, err := NewAddOrderToPackageCommand(orderID, packageID)
//	if err != nil {
//	    return err
//	}
//	err = NewAddOrderToPackageCommandHandler(uowFactory).Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrIntegrityViolation):
//	    // the order already belongs to a package
//	case errors.Is(err, errs.ErrPartialFailure):
//	    // nothing was stored, retry the pair
//	}
type AddOrderToPackageCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAddOrderToPackageCommand(orderID, packageID kernel.UUID) (AddOrderToPackageCommand, error) {
	if err := errors.Join(orderID.Validate(), packageID.Validate()); err != nil {
		return AddOrderToPackageCommand{}, err
	}

	return AddOrderToPackageCommand{
		orderID:   orderID,
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AddOrderToPackageCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderToPackageCommandIsNotConstructed)
}

func (c AddOrderToPackageCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddOrderToPackageCommand) PackageID() kernel.UUID {
	return c.packageID
}
