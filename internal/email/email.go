package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/altera/internal/kafka"
	"github.com/sirupsen/logrus"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender turns reservation events into customer notifications. Delivery is
// logged; no mail transport is wired.
type Sender struct {
	log logrus.FieldLogger
}

func NewSender(log logrus.FieldLogger) *Sender {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Sender{log: log}
}

func (s *Sender) Send(ctx context.Context, event kafka.ReservationEvent) error {
	msg, ok := Render(event)
	if !ok {
		return nil
	}
	s.log.WithFields(logrus.Fields{
		"to":             msg.To,
		"subject":        msg.Subject,
		"reservation_id": event.ReservationID,
	}).Info("send email")
	return nil
}

// Render reports false for events nobody is notified about or that carry no
// recipient.
func Render(event kafka.ReservationEvent) (Message, bool) {
	if event.Email == "" {
		return Message{}, false
	}
	switch event.Type {
	case kafka.EventReservationCreated:
		return Message{
			To:      event.Email,
			Subject: fmt.Sprintf("Reservation #%d received", event.ReservationID),
			Body:    fmt.Sprintf("Your %s seat on flight %d is reserved. Total due: %s.", event.FareClass, event.FlightID, event.Price),
		}, true
	case kafka.EventReservationCompleted:
		return Message{
			To:      event.Email,
			Subject: fmt.Sprintf("Reservation #%d confirmed", event.ReservationID),
			Body:    fmt.Sprintf("We received your payment of %s for flight %d.", event.Price, event.FlightID),
		}, true
	case kafka.EventReservationDeleted:
		return Message{
			To:      event.Email,
			Subject: fmt.Sprintf("Reservation #%d cancelled", event.ReservationID),
			Body:    fmt.Sprintf("Your reservation on flight %d was cancelled.", event.FlightID),
		}, true
	}
	return Message{}, false
}
