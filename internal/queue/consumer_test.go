package queue

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-account/internal/domain"
)

type recordingAcker struct {
	acked    bool
	nacked   bool
	requeued bool
}

func (a *recordingAcker) Ack(tag uint64, multiple bool) error {
	a.acked = true
	return nil
}

func (a *recordingAcker) Nack(tag uint64, multiple, requeue bool) error {
	a.nacked = true
	a.requeued = requeue
	return nil
}

func (a *recordingAcker) Reject(tag uint64, requeue bool) error {
	return a.Nack(tag, false, requeue)
}

func newDelivery(t *testing.T, event domain.FollowEvent) (amqp.Delivery, *recordingAcker) {
	t.Helper()

	body, err := encodeEvent(event)
	require.NoError(t, err)

	acker := &recordingAcker{}
	return amqp.Delivery{Acknowledger: acker, Body: body, MessageId: "job-1"}, acker
}

func testConsumer() *Consumer {
	return &Consumer{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func TestEventRoundTrip(t *testing.T) {
	event := domain.FollowEvent{EdgeID: 3, ProfileID: 4, FollowingID: 5, AcceptedAt: time.Now().UTC().Truncate(time.Second)}

	body, err := encodeEvent(event)
	require.NoError(t, err)

	decoded, err := decodeEvent(body)
	require.NoError(t, err)
	assert.Equal(t, event, decoded)
}

func TestDecodeEvent_RejectsIncomplete(t *testing.T) {
	_, err := decodeEvent([]byte(`{"edge_id": 3}`))
	assert.Error(t, err)

	_, err = decodeEvent([]byte(`not json`))
	assert.Error(t, err)
}

func TestConsumer_Process(t *testing.T) {
	ctx := context.Background()
	event := domain.FollowEvent{EdgeID: 1, ProfileID: 2, FollowingID: 3}

	t.Run("Acks handled event", func(t *testing.T) {
		d, acker := newDelivery(t, event)
		var got domain.FollowEvent

		testConsumer().process(ctx, d, func(_ context.Context, e domain.FollowEvent) error {
			got = e
			return nil
		})

		assert.True(t, acker.acked)
		assert.Equal(t, event.EdgeID, got.EdgeID)
	})

	t.Run("Requeues transient failure", func(t *testing.T) {
		d, acker := newDelivery(t, event)

		testConsumer().process(ctx, d, func(context.Context, domain.FollowEvent) error {
			return errors.New("database unavailable")
		})

		assert.True(t, acker.nacked)
		assert.True(t, acker.requeued)
	})

	t.Run("Drops permanent failure", func(t *testing.T) {
		d, acker := newDelivery(t, event)

		testConsumer().process(ctx, d, func(context.Context, domain.FollowEvent) error {
			return ErrDrop
		})

		assert.True(t, acker.nacked)
		assert.False(t, acker.requeued)
	})

	t.Run("Drops malformed body", func(t *testing.T) {
		acker := &recordingAcker{}
		d := amqp.Delivery{Acknowledger: acker, Body: []byte("{")}
		called := false

		testConsumer().process(ctx, d, func(context.Context, domain.FollowEvent) error {
			called = true
			return nil
		})

		assert.False(t, called)
		assert.True(t, acker.nacked)
		assert.False(t, acker.requeued)
	})
}
