package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/finance-records/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/messaging"
	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/config"
	"github.com/segmentio/kafka-go"
)

const defaultWriteTimeout = 5 * time.Second

// messageWriter is the part of *kafka.Writer used by the publisher
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes record events as JSON to one Kafka topic,
// keyed by owner so one user's events stay ordered
type KafkaPublisher struct {
	writer messageWriter
	topic  string
	logger coreport.Logger
}

var _ messaging.EventPublisher = (*KafkaPublisher)(nil)

// NewKafkaPublisher creates a publisher for the configured brokers and topic
func NewKafkaPublisher(cfg config.EventsConfig, logger coreport.Logger) *KafkaPublisher {
	timeout := cfg.WriteTimeout
	if timeout <= 0 {
		timeout = defaultWriteTimeout
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: timeout,
	}

	logger.Info("Kafka event publisher configured", map[string]any{
		"brokers": cfg.Brokers,
		"topic":   cfg.Topic,
	})
	return &KafkaPublisher{writer: writer, topic: cfg.Topic, logger: logger}
}

// Publish encodes the event and writes it synchronously
func (p *KafkaPublisher) Publish(ctx context.Context, event messaging.RecordEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding %s event: %w", event.Kind, err)
	}

	msg := kafka.Message{
		Key:   []byte(event.Key()),
		Value: payload,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(event.Kind)},
			{Key: "action", Value: []byte(event.Action)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("writing %s event to %s: %w", event.Kind, p.topic, err)
	}

	p.logger.Debug("Record event published", map[string]any{
		"kind":      event.Kind,
		"action":    string(event.Action),
		"record_id": event.RecordID,
		"topic":     p.topic,
	})
	return nil
}

// Close flushes pending writes and closes broker connections
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
