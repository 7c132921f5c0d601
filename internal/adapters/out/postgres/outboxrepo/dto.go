// Package outboxrepo stores shipment change messages next to the rows they
// describe and hands them to the relay.
package outboxrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"

	"github.com/google/uuid"
)

// MessageDTO is a row of the outbox_messages table.
type MessageDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AggregateType string     `gorm:"type:text"`
	AggregateID   uuid.UUID  `gorm:"type:uuid"`
	EventType     string     `gorm:"type:text"`
	Payload       []byte     `gorm:"type:jsonb"`
	OccurredAt    time.Time  `gorm:"type:timestamptz"`
	PublishedAt   *time.Time `gorm:"type:timestamptz"`
}

func (MessageDTO) TableName() string {
	return "outbox_messages"
}

func fromPort(m ports.OutboxMessage) MessageDTO {
	return MessageDTO{
		ID:            m.ID.Bytes(),
		AggregateType: m.AggregateType,
		AggregateID:   m.AggregateID.Bytes(),
		EventType:     m.EventType,
		Payload:       m.Payload,
		OccurredAt:    m.OccurredAt,
	}
}

func toPort(dto MessageDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	aggregateID, err := kernel.UUIDFromBytes(dto.AggregateID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	return ports.OutboxMessage{
		ID:            id,
		AggregateType: dto.AggregateType,
		AggregateID:   aggregateID,
		EventType:     dto.EventType,
		Payload:       dto.Payload,
		OccurredAt:    dto.OccurredAt,
	}, nil
}
