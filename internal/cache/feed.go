package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"social-account/internal/domain"
)

const payloadPrefix = "notification."

// MaxFeedSize bounds how many ids a feed list keeps and returns.
const MaxFeedSize = 31

// FeedCache keeps the most recent notification ids per profile in a Redis
// list, with each payload cached under its own key. It is an index over the
// notifications table and may be empty or partially evicted at any time.
type FeedCache interface {
	RecentIDs(ctx context.Context, profileID int64) ([]int64, error)
	// Get returns nil without error when the payload is not cached.
	Get(ctx context.Context, id int64) (*domain.Notification, error)
	Push(ctx context.Context, notif *domain.Notification) error
}

type feedCache struct {
	rdb    redis.Cmdable
	prefix string
	size   int64
	ttl    time.Duration
}

func NewFeedCache(rdb redis.Cmdable, prefix string, size int, ttl time.Duration) FeedCache {
	if size < 1 || size > MaxFeedSize {
		size = MaxFeedSize
	}
	return &feedCache{
		rdb:    rdb,
		prefix: prefix,
		size:   int64(size),
		ttl:    ttl,
	}
}

func ListKey(prefix string, profileID int64) string {
	return fmt.Sprintf("%s:user.%d.notifications", prefix, profileID)
}

func PayloadKey(id int64) string {
	return payloadPrefix + strconv.FormatInt(id, 10)
}

func (c *feedCache) RecentIDs(ctx context.Context, profileID int64) ([]int64, error) {
	raw, err := c.rdb.LRange(ctx, ListKey(c.prefix, profileID), 0, c.size-1).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(raw))
	for _, v := range raw {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (c *feedCache) Get(ctx context.Context, id int64) (*domain.Notification, error) {
	data, err := c.rdb.Get(ctx, PayloadKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var notif domain.Notification
	if err := json.Unmarshal(data, &notif); err != nil {
		return nil, fmt.Errorf("decode cached notification %d: %w", id, err)
	}
	return &notif, nil
}

// Push caches the payload and prepends its id to the recipient's list,
// trimming the list to the configured size.
func (c *feedCache) Push(ctx context.Context, notif *domain.Notification) error {
	data, err := json.Marshal(notif)
	if err != nil {
		return err
	}

	key := ListKey(c.prefix, notif.ProfileID)
	_, err = c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, PayloadKey(notif.ID), data, c.ttl)
		pipe.LPush(ctx, key, notif.ID)
		pipe.LTrim(ctx, key, 0, c.size-1)
		return nil
	})
	return err
}
