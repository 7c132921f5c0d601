package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
)

var ErrNothingToRelay = errors.New("no unpublished outbox messages")

// RelayOutboxCommandHandler moves pending outbox messages to the broker.
//
// Messages are locked with SKIP LOCKED, so several relays can run side by
// side without publishing the same batch. They are marked published only
// after the broker accepted them; a failure leaves them pending for the next
// run, which makes delivery at-least-once.
type RelayOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
}

func NewRelayOutboxCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.EventPublisher,
) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle returns ErrNothingToRelay when no message is pending.
func (h RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) error {
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

	repo := uow.OutboxRepository()
	messages, err := repo.LockUnpublished(ctx, cmd.Batch())
	if err != nil {
		return err
	}
	if len(messages) == 0 {
		return ErrNothingToRelay
	}

	if err = h.publisher.Publish(ctx, messages...); err != nil {
		return err
	}

	ids := make([]kernel.UUID, 0, len(messages))
	for _, m := range messages {
		ids = append(ids, m.ID)
	}

	if err = repo.MarkPublished(ctx, time.Now().UTC(), ids...); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
