package commands

import (
	"context"
)

type SetPackageShipperCommandHandler struct {
	uowFactory PackageUoWFactory
}

func NewSetPackageShipperCommandHandler(uowFactory PackageUoWFactory) SetPackageShipperCommandHandler {
	return SetPackageShipperCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores the new shipper. The package status is not changed.
func (h SetPackageShipperCommandHandler) Handle(ctx context.Context, cmd SetPackageShipperCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PackageRepository()
	p, err := repo.GetForUpdate(ctx, cmd.PackageID())
	if err != nil {
		return err
	}

	if err = p.SetShipper(cmd.Shipper()); err != nil {
		return err
	}

	if err = repo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
