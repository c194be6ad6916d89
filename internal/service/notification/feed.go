package notification

import (
	"context"
	"iter"
	"sync/atomic"

	"social-account/internal/cache"
	"social-account/internal/domain"
)

type FeedSource string

const (
	SourceCache    FeedSource = "cache"
	SourceDatabase FeedSource = "database"
)

// Feed is a single-use, most-recent-first sequence of notifications. Cached
// entries are hydrated lazily while ranging; a payload missing from the
// cache yields nil in its slot.
type Feed struct {
	Source FeedSource

	ids   []int64
	rows  []domain.Notification
	cache cache.FeedCache

	consumed atomic.Bool
	err      error
}

func newCachedFeed(c cache.FeedCache, ids []int64) *Feed {
	return &Feed{Source: SourceCache, ids: ids, cache: c}
}

func newStoredFeed(rows []domain.Notification) *Feed {
	return &Feed{Source: SourceDatabase, rows: rows}
}

func (f *Feed) Len() int {
	if f.Source == SourceCache {
		return len(f.ids)
	}
	return len(f.rows)
}

// All ranges the feed. Only the first call yields anything.
func (f *Feed) All(ctx context.Context) iter.Seq[*domain.Notification] {
	return func(yield func(*domain.Notification) bool) {
		if !f.consumed.CompareAndSwap(false, true) {
			return
		}

		if f.Source == SourceDatabase {
			for i := range f.rows {
				if !yield(&f.rows[i]) {
					return
				}
			}
			return
		}

		for _, id := range f.ids {
			if err := ctx.Err(); err != nil {
				f.err = err
				return
			}
			notif, err := f.cache.Get(ctx, id)
			if err != nil {
				f.err = err
				return
			}
			if !yield(notif) {
				return
			}
		}
	}
}

// Err reports the error that stopped hydration, if any.
func (f *Feed) Err() error {
	return f.err
}

func (f *Feed) Collect(ctx context.Context) ([]*domain.Notification, error) {
	out := make([]*domain.Notification, 0, f.Len())
	for notif := range f.All(ctx) {
		out = append(out, notif)
	}
	return out, f.Err()
}
