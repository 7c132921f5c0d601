package commands

import (
	"context"

	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

const advancePackageOperation = "advancePackage"

// AdvancePackageCommandHandler advances a package and propagates the mapped
// status to its orders in one transaction.
//
// The package row is locked before the order rows, the same order the
// consolidation handler uses, so the two never deadlock on one package.
// Once the package row has been written, any later failure is reported as a
// partial failure: the transaction is rolled back and the whole command may
// be sent again.
type AdvancePackageCommandHandler struct {
	uowFactory   ShipmentUoWFactory
	consolidator services.Consolidator
}

func NewAdvancePackageCommandHandler(uowFactory ShipmentUoWFactory) AdvancePackageCommandHandler {
	return AdvancePackageCommandHandler{
		uowFactory:   uowFactory,
		consolidator: services.NewConsolidator(),
	}
}

func (h AdvancePackageCommandHandler) Handle(ctx context.Context, cmd AdvancePackageCommand) error {
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

	linked, err := orderRepo.GetByPackageForUpdate(ctx, p.ID())
	if err != nil {
		return err
	}

	changed, err := h.consolidator.Advance(p, cmd.Next(), cmd.At(), linked)
	if err != nil {
		return err
	}

	if err = packageRepo.Update(ctx, p); err != nil {
		return err
	}

	for _, o := range changed {
		if err = orderRepo.Update(ctx, o); err != nil {
			return errs.NewPartialFailureError(advancePackageOperation, err)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.NewPartialFailureError(advancePackageOperation, err)
	}

	return nil
}
