// Package events publishes resource change events to Kafka.
package events

import (
	"context"
	"fmt"

	"miranda/internal/resource"
	"miranda/pkg/kafka"
	"miranda/pkg/logger"
	"miranda/pkg/middleware"
)

const (
	Source        = "miranda-api"
	SchemaVersion = "1"
)

// MessagePublisher is satisfied by *kafka.Producer.
type MessagePublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

type KafkaPublisher struct {
	producer MessagePublisher
	log      *logger.Logger
}

func NewKafkaPublisher(producer MessagePublisher, log *logger.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		log:      log,
	}
}

// Publish sends one change event. Events for the same record share a key so
// they land on one partition in order.
func (p *KafkaPublisher) Publish(ctx context.Context, event resource.Event) error {
	msg, err := kafka.NewMessage().
		WithKey(MessageKey(event)).
		WithValue(event).
		WithEventType(EventType(event)).
		WithCorrelationID(middleware.RequestIDFromContext(ctx)).
		WithSchemaVersion(SchemaVersion).
		WithSource(Source).
		WithTimestamp(event.OccurredAt).
		Build()
	if err != nil {
		return err
	}

	return p.producer.Publish(ctx, msg)
}

func MessageKey(event resource.Event) string {
	return fmt.Sprintf("%s:%s", event.Resource, event.Key)
}

func EventType(event resource.Event) string {
	return fmt.Sprintf("%s.%s", event.Resource, event.Action)
}
