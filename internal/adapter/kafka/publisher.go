package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/testbuddy/marketplace_service/internal/core/domain"
	"github.com/testbuddy/marketplace_service/internal/core/ports"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type EventPublisher struct {
	writer messageWriter
	logger ports.LoggerPort
}

func NewEventPublisher(brokers []string, topic string, logger ports.LoggerPort) *EventPublisher {
	return &EventPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 10 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
		logger: logger,
	}
}

// PublishSwapEvent keys messages by listing so events for one listing stay
// on one partition in order.
func (p *EventPublisher) PublishSwapEvent(ctx context.Context, event domain.SwapEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal swap event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.ListingID.String()),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
		Time: event.OccurredAt,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return domain.NewNetworkError("kafka.PublishSwapEvent", err)
	}

	p.logger.Debug("Swap event published", map[string]interface{}{
		"event":      event.Type,
		"request_id": event.RequestID,
	})
	return nil
}

func (p *EventPublisher) Close() error {
	return p.writer.Close()
}

// LogPublisher stands in when no brokers are configured.
type LogPublisher struct {
	logger ports.LoggerPort
}

func NewLogPublisher(logger ports.LoggerPort) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) PublishSwapEvent(_ context.Context, event domain.SwapEvent) error {
	p.logger.Info("Swap event", map[string]interface{}{
		"event":       event.Type,
		"request_id":  event.RequestID,
		"listing_id":  event.ListingID,
		"status":      event.Status,
		"occurred_at": event.OccurredAt,
	})
	return nil
}

func (p *LogPublisher) Close() error { return nil }
