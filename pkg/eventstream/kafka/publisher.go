// Package kafka publishes record events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/studyforgeco/studyforge/pkg/eventstream"
)

const defaultWriteTimeout = 10 * time.Second

// Publisher publishes record events to a Kafka topic.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a Kafka-backed eventstream publisher. The writer is
// lazy; no connection is made until the first publish.
func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("at least one kafka broker is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("kafka topic is required")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: defaultWriteTimeout,
		RequiredAcks: kafka.RequireOne,
	}

	return &Publisher{writer: writer}, nil
}

// PublishRecord marshals the event and writes it to the topic, keyed by
// record id so events for the same record land on the same partition.
func (p *Publisher) PublishRecord(ctx context.Context, event *eventstream.RecordPersistedEvent) error {
	if event == nil {
		return eventstream.ErrNilRecordEvent
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling record event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.RecordID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("writing record event: %w", err)
	}

	return nil
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
