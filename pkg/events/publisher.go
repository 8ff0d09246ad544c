package events

import (
	"context"
	"strings"

	"github.com/segmentio/kafka-go"
)

// Topic for scheduling events consumed by downstream reminder services.
const TopicAppointmentScheduled = "appointments.scheduled"

// Publisher emits domain events. Implementations must be safe for concurrent
// use.
type Publisher interface {
	Publish(ctx context.Context, topic string, key string, payload []byte) error
	Close() error
}

// KafkaPublisher writes events to Kafka. A nil *KafkaPublisher is a valid
// disabled publisher, so callers do not need to branch on configuration.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher builds a publisher from a comma separated broker list.
// Returns nil (disabled) when the list is empty.
func NewKafkaPublisher(brokers string) *KafkaPublisher {
	list := splitBrokers(brokers)
	if len(list) == 0 {
		return nil
	}
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(list...),
			Balancer: &kafka.Hash{},
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, topic, key string, payload []byte) error {
	if p == nil {
		return nil
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
	})
}

func (p *KafkaPublisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}

func splitBrokers(brokers string) []string {
	var list []string
	for _, b := range strings.Split(brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			list = append(list, b)
		}
	}
	return list
}
