package sync

import (
	"context"
	"time"

	"pmshub/pkg/kafka"
	"pmshub/pkg/logger"
	"pmshub/pkg/model"
)

// SyncEvent is the payload published after every per-connection sync
// attempt, successful or not.
type SyncEvent struct {
	UserID       string    `json:"user_id"`
	ConnectionID string    `json:"connection_id"`
	Vendor       string    `json:"vendor"`
	Reservations int       `json:"reservations,omitempty"`
	Guests       int       `json:"guests,omitempty"`
	Rooms        int       `json:"rooms,omitempty"`
	Revenue      int       `json:"revenue,omitempty"`
	Occupancy    int       `json:"occupancy,omitempty"`
	Error        string    `json:"error,omitempty"`
	CompletedAt  time.Time `json:"completed_at"`
}

type EventPublisher interface {
	PublishCompleted(ctx context.Context, userID string, conn *model.Connection, data *model.PMSData)
	PublishFailed(ctx context.Context, userID string, conn *model.Connection, syncErr error)
}

// kafkaEventPublisher emits sync events through the shared producer.
// Publish failures are logged, never surfaced: event delivery must not
// affect the sync outcome the caller sees.
type kafkaEventPublisher struct {
	producer *kafka.Producer
	log      *logger.Logger
}

func NewKafkaEventPublisher(producer *kafka.Producer, log *logger.Logger) EventPublisher {
	return &kafkaEventPublisher{producer: producer, log: log}
}

func (p *kafkaEventPublisher) PublishCompleted(ctx context.Context, userID string, conn *model.Connection, data *model.PMSData) {
	event := SyncEvent{
		UserID:       userID,
		ConnectionID: conn.ID,
		Vendor:       conn.Type,
		Reservations: len(data.Reservations),
		Guests:       len(data.Guests),
		Rooms:        len(data.Rooms),
		Revenue:      len(data.Revenue),
		Occupancy:    len(data.Occupancy),
		CompletedAt:  time.Now().UTC(),
	}
	p.publish(ctx, kafka.EventSyncCompleted, conn.ID, event)
}

func (p *kafkaEventPublisher) PublishFailed(ctx context.Context, userID string, conn *model.Connection, syncErr error) {
	event := SyncEvent{
		UserID:       userID,
		ConnectionID: conn.ID,
		Vendor:       conn.Type,
		Error:        syncErr.Error(),
		CompletedAt:  time.Now().UTC(),
	}
	p.publish(ctx, kafka.EventSyncFailed, conn.ID, event)
}

func (p *kafkaEventPublisher) publish(ctx context.Context, eventType, key string, event SyncEvent) {
	msg := kafka.NewMessage().
		WithKey(key).
		WithValue(event).
		WithEventID("").
		WithEventType(eventType).
		WithSchemaVersion("1.0").
		WithSource("pmshub").
		Build()

	if err := p.producer.Publish(ctx, msg); err != nil {
		p.log.Error("failed to publish sync event", "event_type", eventType, "error", err)
	}
}

// noopEventPublisher is used when Kafka is disabled by configuration.
type noopEventPublisher struct{}

func NewNoopEventPublisher() EventPublisher {
	return noopEventPublisher{}
}

func (noopEventPublisher) PublishCompleted(context.Context, string, *model.Connection, *model.PMSData) {
}

func (noopEventPublisher) PublishFailed(context.Context, string, *model.Connection, error) {}
