// Package kafka relays shipment change messages from the outbox to a kafka
// topic.
package kafka

import (
	"context"
	"fmt"

	"logistics/internal/core/ports"

	kafkago "github.com/segmentio/kafka-go"
)

// Header names set on every message.
const (
	HeaderMessageID     = "message-id"
	HeaderEventType     = "event-type"
	HeaderAggregateType = "aggregate-type"
)

// Writer is the subset of kafka-go's Writer the publisher needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Publisher implements ports.EventPublisher. Messages are keyed by aggregate
// id so that every change of one order or package lands on the same partition
// in the order it was recorded.
type Publisher struct {
	writer Writer
}

func NewPublisher(broker, topic string) *Publisher {
	return NewPublisherWithWriter(&kafkago.Writer{
		Addr:                   kafkago.TCP(broker),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
	})
}

func NewPublisherWithWriter(w Writer) *Publisher {
	return &Publisher{writer: w}
}

// Publish writes all messages in one batch. Either the whole batch is
// acknowledged or an error is returned and the caller keeps the messages
// unpublished.
func (p *Publisher) Publish(ctx context.Context, messages ...ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	batch := make([]kafkago.Message, 0, len(messages))
	for _, m := range messages {
		batch = append(batch, kafkago.Message{
			Key:   []byte(m.AggregateID.String()),
			Value: m.Payload,
			Time:  m.OccurredAt,
			Headers: []kafkago.Header{
				{Key: HeaderMessageID, Value: []byte(m.ID.String())},
				{Key: HeaderEventType, Value: []byte(m.EventType)},
				{Key: HeaderAggregateType, Value: []byte(m.AggregateType)},
			},
		})
	}

	if err := p.writer.WriteMessages(ctx, batch...); err != nil {
		return fmt.Errorf("kafka: write %d messages: %w", len(batch), err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
