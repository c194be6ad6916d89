// Package queue carries follow events from the accept path to the fan-out
// pipeline over RabbitMQ. Delivery is at-least-once: consumers must tolerate
// seeing the same event more than once.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"social-account/internal/domain"
)

type JobID string

var (
	ErrNotConfirmed = errors.New("broker did not confirm the message")
	// ErrDrop marks a delivery that must not be redelivered.
	ErrDrop = errors.New("drop message")
)

// Publisher hands follow events to the fan-out pipeline. Enqueue returns once
// the broker has accepted the message; processing is never awaited.
type Publisher interface {
	Enqueue(ctx context.Context, event domain.FollowEvent) (JobID, error)
}

// Declare makes sure the durable queue exists on the channel.
func Declare(ch *amqp.Channel, name string) error {
	_, err := ch.QueueDeclare(name, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("declare queue %s: %w", name, err)
	}
	return nil
}

func encodeEvent(event domain.FollowEvent) ([]byte, error) {
	return json.Marshal(event)
}

func decodeEvent(body []byte) (domain.FollowEvent, error) {
	var event domain.FollowEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return event, err
	}
	if event.ProfileID == 0 || event.FollowingID == 0 {
		return event, errors.New("follow event without profile ids")
	}
	return event, nil
}
