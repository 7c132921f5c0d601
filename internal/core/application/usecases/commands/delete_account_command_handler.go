package commands

import (
	"context"
)

// DeleteAccountCommandHandler removes an account. An account still named as
// the sender or shipper of an order, or the shipper of a package, is kept and
// the handler returns an integrity violation on that field.
type DeleteAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

func NewDeleteAccountCommandHandler(uowFactory AccountUoWFactory) DeleteAccountCommandHandler {
	return DeleteAccountCommandHandler{uowFactory: uowFactory}
}

func (h DeleteAccountCommandHandler) Handle(ctx context.Context, cmd DeleteAccountCommand) error {
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

	if err := uow.AccountRepository().Delete(ctx, cmd.AccountID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
