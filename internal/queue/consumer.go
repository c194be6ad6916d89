package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"social-account/internal/domain"
)

type HandlerFunc func(ctx context.Context, event domain.FollowEvent) error

type Consumer struct {
	ch       *amqp.Channel
	queue    string
	prefetch int
	logger   *slog.Logger
}

func NewConsumer(ch *amqp.Channel, queueName string, prefetch int, logger *slog.Logger) (*Consumer, error) {
	if err := Declare(ch, queueName); err != nil {
		return nil, err
	}
	if prefetch < 1 {
		prefetch = 1
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return nil, fmt.Errorf("set qos: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Consumer{ch: ch, queue: queueName, prefetch: prefetch, logger: logger}, nil
}

// Run consumes until ctx is cancelled or the channel closes.
func (c *Consumer) Run(ctx context.Context, handle HandlerFunc) error {
	msgs, err := c.ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("register consumer: %w", err)
	}

	c.logger.Info("Consumer started", "queue", c.queue, "prefetch", c.prefetch)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errors.New("delivery channel closed")
			}
			c.process(ctx, d, handle)
		}
	}
}

func (c *Consumer) process(ctx context.Context, d amqp.Delivery, handle HandlerFunc) {
	event, err := decodeEvent(d.Body)
	if err != nil {
		c.logger.Error("Failed to decode follow event", "message_id", d.MessageId, "error", err)
		_ = d.Nack(false, false)
		return
	}

	if err := handle(ctx, event); err != nil {
		requeue := !errors.Is(err, ErrDrop)
		c.logger.Error("Failed to process follow event",
			"message_id", d.MessageId, "edge_id", event.EdgeID, "requeue", requeue, "error", err)
		_ = d.Nack(false, requeue)
		return
	}

	if err := d.Ack(false); err != nil {
		c.logger.Warn("Failed to ack follow event", "message_id", d.MessageId, "error", err)
	}
}
