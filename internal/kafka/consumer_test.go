package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Domenick1991/altera/internal/domain"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	msgs      []kafka.Message
	committed []int64
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.msgs) == 0 {
		return kafka.Message{}, context.Canceled
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func (r *fakeReader) Close() error { return nil }

func TestEventHandler(t *testing.T) {
	var got []ReservationEvent
	handler := EventHandler(func(_ context.Context, e ReservationEvent) error {
		got = append(got, e)
		return nil
	})

	payload, err := json.Marshal(ReservationEvent{Type: EventReservationCreated, ReservationID: 11, Price: domain.Money(26500)})
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"price":"265.00"`)

	require.NoError(t, handler(context.Background(), kafka.Message{Value: payload}))
	require.NoError(t, handler(context.Background(), kafka.Message{Value: []byte("not json")}))

	require.Len(t, got, 1)
	assert.Equal(t, int64(11), got[0].ReservationID)
	assert.Equal(t, domain.Money(26500), got[0].Price)
}

func TestConsumer_CommitsAfterHandler(t *testing.T) {
	reader := &fakeReader{msgs: []kafka.Message{{Offset: 1}, {Offset: 2}, {Offset: 3}}}
	c := &Consumer{reader: reader}

	boom := errors.New("smtp down")
	err := c.Consume(context.Background(), func(_ context.Context, msg kafka.Message) error {
		if msg.Offset == 3 {
			return boom
		}
		return nil
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []int64{1, 2}, reader.committed)
}

func TestConsumer_StopsOnCancel(t *testing.T) {
	c := &Consumer{reader: &fakeReader{}}
	err := c.Consume(context.Background(), func(context.Context, kafka.Message) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHeadersFor(t *testing.T) {
	msg := kafka.Message{Headers: headersFor(ReservationEvent{Type: EventReservationDeleted})}
	assert.Equal(t, EventReservationDeleted, header(msg, headerEventType))
	assert.Equal(t, "application/json", header(msg, headerContentType))

	msg = kafka.Message{Headers: headersFor(map[string]string{"a": "b"})}
	assert.Empty(t, header(msg, headerEventType))
}

func TestConsumerCloseNil(t *testing.T) {
	var c *Consumer
	assert.NoError(t, c.Close())
}

func TestProducer_WithoutBrokers(t *testing.T) {
	p := NewProducer(nil)
	assert.Error(t, p.CheckConnection(context.Background()))
	assert.Error(t, p.Publish(context.Background(), "", "k", ReservationEvent{}))
	assert.NoError(t, p.Close())
}
