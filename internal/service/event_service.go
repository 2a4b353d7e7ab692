package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

const publishTimeout = 5 * time.Second

// Domain event types
const (
	EventAppointmentCreated       = "appointment.created"
	EventAppointmentStatusUpdated = "appointment.status_updated"
	EventAppointmentCancelled     = "appointment.cancelled"
	EventReviewCreated            = "review.created"
)

// Publisher is implemented by the Kafka producer.
type Publisher interface {
	Publish(ctx context.Context, key string, value interface{}) error
}

// Event is the envelope written to the event stream.
type Event struct {
	Type        string      `json:"type"`
	AggregateID string      `json:"aggregate_id"`
	OccurredAt  time.Time   `json:"occurred_at"`
	Payload     interface{} `json:"payload"`
}

// EventService publishes domain events after the originating write has
// committed. Publishing is best effort: failures are logged, never returned.
type EventService interface {
	Publish(ctx context.Context, eventType string, aggregateID string, payload interface{})
}

type eventService struct {
	publisher Publisher
	log       *logrus.Logger
}

// NewEventService returns a service that drops events when publisher is nil.
func NewEventService(publisher Publisher, log *logrus.Logger) EventService {
	return &eventService{
		publisher: publisher,
		log:       log,
	}
}

func (s *eventService) Publish(ctx context.Context, eventType string, aggregateID string, payload interface{}) {
	if s.publisher == nil {
		return
	}

	event := Event{
		Type:        eventType,
		AggregateID: aggregateID,
		OccurredAt:  time.Now().UTC(),
		Payload:     payload,
	}

	// Detached from the request so a client disconnect does not drop the event.
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := s.publisher.Publish(pubCtx, aggregateID, event); err != nil {
		s.log.Warnf("Failed to publish %s for %s: %+v", eventType, aggregateID, err)
		return
	}
	s.log.Debugf("Published %s for %s", eventType, aggregateID)
}
