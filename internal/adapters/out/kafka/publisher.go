// Package kafka publishes order notifications to a Kafka topic. The payload
// bytes come straight from the outbox; the publisher adds no envelope.
package kafka

import (
	"context"
	"strings"
	"time"

	"grocery/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// Publisher implements ports.MessagePublisher on top of a kafka-go writer.
// Messages are keyed by order ID so all notifications for one order land in
// the same partition, preserving their relative order for consumers.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a publisher for the given brokers and topic.
// brokersCSV is a comma-separated broker list; blank entries are skipped.
func NewPublisher(brokersCSV, topic string) *Publisher {
	brokers := make([]string, 0)
	for _, broker := range strings.Split(brokersCSV, ",") {
		broker = strings.TrimSpace(broker)
		if broker != "" {
			brokers = append(brokers, broker)
		}
	}

	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// Publish sends one outbox message to the topic.
func (p *Publisher) Publish(ctx context.Context, message ports.OutboxMessage) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(message.Key),
		Value: message.Payload,
		Time:  time.Now().UTC(),
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(message.EventID)},
		},
	})
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
