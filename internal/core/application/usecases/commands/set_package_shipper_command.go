package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrSetPackageShipperCommandIsNotConstructed = errors.New(
	"SetPackageShipperCommand must be created via NewSetPackageShipperCommand constructor",
)

// SetPackageShipperCommand reassigns or clears the shipper of a package.
type SetPackageShipperCommand struct { //nolint:recvcheck //using for validation
	packageID kernel.UUID
	shipper   *kernel.UUID

	guard guard.ConstructorGuard
}

func NewSetPackageShipperCommand(packageID kernel.UUID, shipper *kernel.UUID) (SetPackageShipperCommand, error) {
	if err := packageID.Validate(); err != nil {
		return SetPackageShipperCommand{}, err
	}
	if shipper != nil {
		if err := shipper.Validate(); err != nil {
			return SetPackageShipperCommand{}, err
		}
	}

	return SetPackageShipperCommand{
		packageID: packageID,
		shipper:   shipper,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SetPackageShipperCommand) Validate() error {
	return c.guard.Validate(ErrSetPackageShipperCommandIsNotConstructed)
}

func (c SetPackageShipperCommand) PackageID() kernel.UUID {
	return c.packageID
}

func (c SetPackageShipperCommand) Shipper() *kernel.UUID {
	return c.shipper
}
