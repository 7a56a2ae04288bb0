package email

import (
	"context"
	"testing"

	"github.com/Domenick1991/altera/internal/domain"
	"github.com/Domenick1991/altera/internal/kafka"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	msg, ok := Render(kafka.ReservationEvent{
		Type:          kafka.EventReservationCreated,
		ReservationID: 11,
		Email:         "ana@example.com",
		FlightID:      7,
		FareClass:     domain.FareClassEconomy,
		Price:         domain.Money(26500),
	})
	require.True(t, ok)
	assert.Equal(t, "ana@example.com", msg.To)
	assert.Equal(t, "Reservation #11 received", msg.Subject)
	assert.Contains(t, msg.Body, "265.00")

	_, ok = Render(kafka.ReservationEvent{Type: kafka.EventReservationCreated})
	assert.False(t, ok)

	_, ok = Render(kafka.ReservationEvent{Type: "unknown", Email: "ana@example.com"})
	assert.False(t, ok)
}

func TestSender_Send(t *testing.T) {
	log, hook := test.NewNullLogger()
	s := NewSender(log)

	err := s.Send(context.Background(), kafka.ReservationEvent{
		Type:          kafka.EventReservationCompleted,
		ReservationID: 11,
		Email:         "ana@example.com",
	})
	require.NoError(t, err)
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
	assert.Equal(t, "Reservation #11 confirmed", hook.LastEntry().Data["subject"])
}
