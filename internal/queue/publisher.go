package queue

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"social-account/internal/domain"
)

type amqpPublisher struct {
	mu    sync.Mutex
	ch    *amqp.Channel
	queue string
}

// NewPublisher puts the channel into confirm mode so Enqueue only succeeds
// after the broker has taken responsibility for the message.
func NewPublisher(ch *amqp.Channel, queueName string) (Publisher, error) {
	if err := Declare(ch, queueName); err != nil {
		return nil, err
	}
	if err := ch.Confirm(false); err != nil {
		return nil, fmt.Errorf("enable publisher confirms: %w", err)
	}
	return &amqpPublisher{ch: ch, queue: queueName}, nil
}

func (p *amqpPublisher) Enqueue(ctx context.Context, event domain.FollowEvent) (JobID, error) {
	body, err := encodeEvent(event)
	if err != nil {
		return "", fmt.Errorf("encode follow event: %w", err)
	}

	id := JobID(uuid.New().String())
	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    string(id),
		Timestamp:    time.Now(),
		Type:         "follow.accepted",
		Body:         body,
	}

	p.mu.Lock()
	confirm, err := p.ch.PublishWithDeferredConfirmWithContext(ctx, "", p.queue, false, false, msg)
	p.mu.Unlock()
	if err != nil {
		return "", fmt.Errorf("publish follow event: %w", err)
	}

	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		return "", err
	}
	if !acked {
		return "", ErrNotConfirmed
	}
	return id, nil
}
