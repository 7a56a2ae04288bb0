package kafka

import (
	"time"

	"github.com/Domenick1991/altera/internal/domain"
	"github.com/segmentio/kafka-go"
)

const (
	EventReservationCreated   = "reservation_created"
	EventReservationCompleted = "reservation_completed"
	EventReservationDeleted   = "reservation_deleted"

	headerEventType   = "event-type"
	headerContentType = "content-type"
)

// ReservationEvent is published on every reservation lifecycle change. The
// notifications topic carries the same payload.
type ReservationEvent struct {
	Type          string           `json:"type"`
	ReservationID int64            `json:"reservation_id"`
	UserID        int64            `json:"user_id"`
	Email         string           `json:"email,omitempty"`
	FlightID      int64            `json:"flight_id"`
	FareClass     domain.FareClass `json:"fare_class"`
	Price         domain.Money     `json:"price"`
	Done          bool             `json:"done"`
	OccurredAt    time.Time        `json:"occurred_at"`
}

type typedEvent interface {
	eventType() string
}

func (e ReservationEvent) eventType() string { return e.Type }

func headersFor(payload interface{}) []kafka.Header {
	headers := []kafka.Header{{Key: headerContentType, Value: []byte("application/json")}}
	if te, ok := payload.(typedEvent); ok && te.eventType() != "" {
		headers = append(headers, kafka.Header{Key: headerEventType, Value: []byte(te.eventType())})
	}
	return headers
}

func header(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
