package commands

import (
	"context"
	"time"
)

type PurgeOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
}

func NewPurgeOutboxCommandHandler(uowFactory OutboxUoWFactory) PurgeOutboxCommandHandler {
	return PurgeOutboxCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes old published messages and reports how many were removed.
// Pending messages are never deleted, whatever their age.
func (h PurgeOutboxCommandHandler) Handle(ctx context.Context, cmd PurgeOutboxCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-cmd.OlderThan())
	removed, err := uow.OutboxRepository().DeletePublishedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
