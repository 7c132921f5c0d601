package ports

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
)

// Aggregate types carried by outbox messages.
const (
	AggregateOrder   = "order"
	AggregatePackage = "package"
)

// OutboxMessage is a shipment change recorded in the same transaction as the
// change itself and relayed to the broker afterwards.
type OutboxMessage struct {
	ID            kernel.UUID
	AggregateType string
	AggregateID   kernel.UUID
	EventType     string
	Payload       []byte
	OccurredAt    time.Time
}

// OutboxRepository stores pending shipment change messages.
type OutboxRepository interface {
	Add(ctx context.Context, messages ...OutboxMessage) error

	// LockUnpublished locks up to limit unpublished messages, oldest first.
	// Rows locked by another relay are skipped.
	LockUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	MarkPublished(ctx context.Context, at time.Time, ids ...kernel.UUID) error

	// DeletePublishedBefore removes messages published before cutoff and
	// returns how many were removed.
	DeletePublishedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// EventPublisher delivers outbox messages to the broker.
type EventPublisher interface {
	Publish(ctx context.Context, messages ...OutboxMessage) error
}
