package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrCreatePackageCommandIsNotConstructed = errors.New(
	"CreatePackageCommand must be created via NewCreatePackageCommand constructor",
)

// CreatePackageCommand opens an empty package between two pickup points.
//
// Example:
//
//	cmd, err := NewCreatePackageCommand(kernel.NewUUID(), pointA, pointC, nil)
//	if err != nil {
//	    return err
//	}
//	err = NewCreatePackageCommandHandler(uowFactory).Handle(ctx, cmd)
type CreatePackageCommand struct { //nolint:recvcheck //using for validation
	packageID kernel.UUID
	route     kernel.Route
	shipper   *kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreatePackageCommand(
	packageID, pickupFrom, pickupTo kernel.UUID,
	shipper *kernel.UUID,
) (CreatePackageCommand, error) {
	cmd := CreatePackageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPackageID(packageID),
		cmd.setRoute(pickupFrom, pickupTo),
		cmd.setShipper(shipper),
	); err != nil {
		return CreatePackageCommand{}, err
	}

	return cmd, nil
}

func (c CreatePackageCommand) Validate() error {
	return c.guard.Validate(ErrCreatePackageCommandIsNotConstructed)
}

func (c CreatePackageCommand) PackageID() kernel.UUID {
	return c.packageID
}

func (c CreatePackageCommand) Route() kernel.Route {
	return c.route
}

func (c CreatePackageCommand) Shipper() *kernel.UUID {
	return c.shipper
}

func (c *CreatePackageCommand) setPackageID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.packageID = id
	return nil
}

func (c *CreatePackageCommand) setRoute(from, to kernel.UUID) error {
	route, err := kernel.NewRoute(from, to)
	if err != nil {
		return err
	}

	c.route = route
	return nil
}

func (c *CreatePackageCommand) setShipper(shipper *kernel.UUID) error {
	if shipper != nil {
		if err := shipper.Validate(); err != nil {
			return err
		}
	}

	c.shipper = shipper
	return nil
}
