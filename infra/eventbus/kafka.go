//go:build kafka

package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bankdash/backend/pkg/eventbus"
	"github.com/segmentio/kafka-go"
)

// KafkaEventBus publishes domain events to a Kafka topic. It is a
// publish-only bridge: local handler registration still works so the process
// keeps its in-process subscribers, and every emitted event is additionally
// written to Kafka for external consumers.
type KafkaEventBus struct {
	local  *MemoryEventBus
	writer *kafka.Writer
	logger *slog.Logger
}

type kafkaEnvelope struct {
	Type  string `json:"type"`
	Event any    `json:"event"`
}

// NewWithKafka creates a Kafka-backed event bus. brokers is a comma-separated
// list (e.g. "localhost:9092,localhost:9093").
func NewWithKafka(brokers, topic string, logger *slog.Logger) (*KafkaEventBus, error) {
	parsed := parseBrokers(brokers)
	if len(parsed) == 0 {
		return nil, fmt.Errorf("kafka event bus: brokers are required")
	}
	if topic == "" {
		return nil, fmt.Errorf("kafka event bus: topic is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &KafkaEventBus{
		local: NewWithMemory(logger),
		writer: &kafka.Writer{
			Addr:     kafka.TCP(parsed...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
		logger: logger.With("bus", "kafka", "topic", topic),
	}, nil
}

// Register adds an in-process handler for a specific event type.
func (b *KafkaEventBus) Register(eventType string, handler eventbus.HandlerFunc) {
	b.local.Register(eventType, handler)
}

// Emit dispatches to in-process handlers and publishes the event to Kafka.
func (b *KafkaEventBus) Emit(ctx context.Context, event eventbus.Event) error {
	if err := b.local.Emit(ctx, event); err != nil {
		return err
	}
	value, err := json.Marshal(kafkaEnvelope{Type: event.Type(), Event: event})
	if err != nil {
		return fmt.Errorf("kafka event bus: marshal %s: %w", event.Type(), err)
	}
	return b.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Type()),
		Value: value,
	})
}

// Close flushes and closes the underlying writer.
func (b *KafkaEventBus) Close() error {
	return b.writer.Close()
}

func parseBrokers(brokers string) []string {
	var out []string
	for _, b := range strings.Split(brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

var _ eventbus.Bus = (*KafkaEventBus)(nil)
