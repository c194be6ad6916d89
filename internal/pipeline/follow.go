// Package pipeline fans accepted follows out into the followed profile's
// notification feed.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"social-account/internal/domain"
	"social-account/internal/queue"
	"social-account/internal/repository"
)

type Notifier interface {
	Publish(ctx context.Context, notif *domain.Notification) error
}

type FollowHandler struct {
	followers repository.FollowerRepository
	notifier  Notifier
	rdb       redis.Cmdable
	prefix    string
	ttl       time.Duration
	leaseTTL  time.Duration
	logger    *slog.Logger
}

// DefaultLeaseTTL bounds how long a crashed worker blocks redeliveries.
const DefaultLeaseTTL = 30 * time.Second

func NewFollowHandler(
	followers repository.FollowerRepository,
	notifier Notifier,
	rdb redis.Cmdable,
	prefix string,
	ttl time.Duration,
	logger *slog.Logger,
) *FollowHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FollowHandler{
		followers: followers,
		notifier:  notifier,
		rdb:       rdb,
		prefix:    prefix,
		ttl:       ttl,
		leaseTTL:  DefaultLeaseTTL,
		logger:    logger,
	}
}

// ErrInProgress is returned while another delivery of the same event holds
// the processing lease; the delivery is requeued.
var ErrInProgress = errors.New("follow event in progress")

// Handle records the follow notification at least once per edge. The done
// marker is only written after the notification is stored, so a failure at
// any point leaves the event to be retried by a redelivery. The short
// processing lease keeps concurrent redeliveries from publishing twice.
func (h *FollowHandler) Handle(ctx context.Context, event domain.FollowEvent) error {
	exists, err := h.followers.Exists(ctx, event.ProfileID, event.FollowingID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: follow edge %d removed", queue.ErrDrop, event.EdgeID)
	}

	doneKey := h.markerKey(event.EdgeID)
	done, err := h.rdb.Exists(ctx, doneKey).Result()
	if err != nil {
		return fmt.Errorf("check follow event marker: %w", err)
	}
	if done > 0 {
		h.logger.Info("Follow event already processed", "edge_id", event.EdgeID)
		return nil
	}

	leaseKey := h.leaseKey(event.EdgeID)
	leased, err := h.rdb.SetNX(ctx, leaseKey, 1, h.leaseTTL).Result()
	if err != nil {
		return fmt.Errorf("lease follow event: %w", err)
	}
	if !leased {
		return ErrInProgress
	}
	defer func() {
		if err := h.rdb.Del(context.WithoutCancel(ctx), leaseKey).Err(); err != nil {
			h.logger.Warn("Failed to release follow event lease", "edge_id", event.EdgeID, "error", err)
		}
	}()

	notif := &domain.Notification{
		ProfileID: event.FollowingID,
		ActorID:   event.ProfileID,
		Action:    domain.ActionFollow,
	}
	if err := h.notifier.Publish(ctx, notif); err != nil {
		return err
	}

	if err := h.rdb.Set(ctx, doneKey, event.AcceptedAt.Unix(), h.ttl).Err(); err != nil {
		h.logger.Warn("Failed to mark follow event processed", "edge_id", event.EdgeID, "error", err)
	}

	h.logger.Info("Follow notification published",
		"edge_id", event.EdgeID, "notification_id", notif.ID, "profile_id", notif.ProfileID)
	return nil
}

func (h *FollowHandler) markerKey(edgeID int64) string {
	return fmt.Sprintf("%s:follow_pipeline.%d", h.prefix, edgeID)
}

func (h *FollowHandler) leaseKey(edgeID int64) string {
	return fmt.Sprintf("%s:follow_pipeline.%d.lease", h.prefix, edgeID)
}
