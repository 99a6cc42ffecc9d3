package events

import (
	"context"

	"go.uber.org/zap"

	"github.com/harborview-stays/service-reservation/internal/kafka"
)

const eventSource = "service-reservation"

// Publisher emits booking lifecycle events. Publishing is best-effort: a
// broker failure must never fail the booking operation itself, so
// implementations log and swallow errors.
type Publisher interface {
	PublishBookingConfirmed(ctx context.Context, evt BookingConfirmedEvent)
	PublishBookingCancelled(ctx context.Context, evt BookingCancelledEvent)
}

// KafkaPublisher publishes booking events to Kafka as CloudEvents.
type KafkaPublisher struct {
	producer *kafka.Producer
	logger   *zap.Logger
}

// NewKafkaPublisher creates a new KafkaPublisher.
func NewKafkaPublisher(producer *kafka.Producer, logger *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, logger: logger}
}

// PublishBookingConfirmed emits a booking.confirmed event.
func (p *KafkaPublisher) PublishBookingConfirmed(ctx context.Context, evt BookingConfirmedEvent) {
	p.publish(ctx, BookingConfirmed, evt)
}

// PublishBookingCancelled emits a booking.cancelled event.
func (p *KafkaPublisher) PublishBookingCancelled(ctx context.Context, evt BookingCancelledEvent) {
	p.publish(ctx, BookingCancelled, evt)
}

func (p *KafkaPublisher) publish(ctx context.Context, eventType string, data interface{}) {
	cloudEvent, err := kafka.NewCloudEvent(eventSource, eventType, data)
	if err != nil {
		p.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	if err := p.producer.PublishEvent(ctx, TopicBookingEvents, cloudEvent); err != nil {
		p.logger.Error("failed to publish event",
			zap.String("topic", TopicBookingEvents),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}
