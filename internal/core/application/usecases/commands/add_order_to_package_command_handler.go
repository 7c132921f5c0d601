package commands

import (
	"context"

	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

const addOrderToPackageOperation = "addOrderToPackage"

// AddOrderToPackageCommandHandler links an order to a package and updates the
// package quantity and weight in the same transaction.
//
// The package row is locked first so concurrent links to one package apply
// their increments one after another. The order row is locked next, and its
// current linkage is checked under that lock: a retried call after a lost
// commit cannot count the same order twice.
type AddOrderToPackageCommandHandler struct {
	uowFactory   ShipmentUoWFactory
	consolidator services.Consolidator
}

func NewAddOrderToPackageCommandHandler(uowFactory ShipmentUoWFactory) AddOrderToPackageCommandHandler {
	return AddOrderToPackageCommandHandler{
		uowFactory:   uowFactory,
		consolidator: services.NewConsolidator(),
	}
}

func (h AddOrderToPackageCommandHandler) Handle(ctx context.Context, cmd AddOrderToPackageCommand) error {
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

	packageRepo := uow.PackageRepository()
	orderRepo := uow.OrderRepository()

	p, err := packageRepo.GetForUpdate(ctx, cmd.PackageID())
	if err != nil {
		return err
	}

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.consolidator.Link(o, p); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = packageRepo.Update(ctx, p); err != nil {
		return errs.NewPartialFailureError(addOrderToPackageOperation, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.NewPartialFailureError(addOrderToPackageOperation, err)
	}

	return nil
}
