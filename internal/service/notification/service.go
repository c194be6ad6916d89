package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"social-account/internal/cache"
	"social-account/internal/domain"
	"social-account/internal/repository"
)

const (
	PageSize        = 30
	FallbackLimit   = 30
	RecentWindow    = 6 // months
	FollowingWindow = 1 // months
)

type Service interface {
	Fetch(ctx context.Context, profileID int64) (*Feed, error)
	ListRecent(ctx context.Context, profileID int64, action domain.NotificationAction, page int) (domain.SimplePage[domain.Notification], error)
	ListFollowingActivity(ctx context.Context, profileID int64, action domain.NotificationAction, page int) (domain.SimplePage[domain.Notification], error)
	Publish(ctx context.Context, notif *domain.Notification) error
}

type service struct {
	notifRepo    repository.NotificationRepository
	followerRepo repository.FollowerRepository
	feed         cache.FeedCache
	logger       *slog.Logger
	now          func() time.Time
}

func NewService(
	notifRepo repository.NotificationRepository,
	followerRepo repository.FollowerRepository,
	feed cache.FeedCache,
	logger *slog.Logger,
) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		notifRepo:    notifRepo,
		followerRepo: followerRepo,
		feed:         feed,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *service) Fetch(ctx context.Context, profileID int64) (*Feed, error) {
	ids, err := s.feed.RecentIDs(ctx, profileID)
	if err != nil {
		s.logger.Warn("Feed cache unavailable, reading from database", "profile_id", profileID, "error", err)
		ids = nil
	}

	if len(ids) > 0 {
		return newCachedFeed(s.feed, ids), nil
	}

	rows, err := s.notifRepo.ListLatest(ctx, profileID, FallbackLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load notifications: %w", err)
	}
	return newStoredFeed(rows), nil
}

func (s *service) ListRecent(ctx context.Context, profileID int64, action domain.NotificationAction, page int) (domain.SimplePage[domain.Notification], error) {
	q, err := s.activityQuery(action, page, RecentWindow)
	if err != nil {
		return domain.SimplePage[domain.Notification]{}, err
	}

	rows, err := s.notifRepo.ListByProfile(ctx, profileID, q)
	if err != nil {
		return domain.SimplePage[domain.Notification]{}, err
	}
	return domain.NewSimplePage(rows, q.Page), nil
}

func (s *service) ListFollowingActivity(ctx context.Context, profileID int64, action domain.NotificationAction, page int) (domain.SimplePage[domain.Notification], error) {
	q, err := s.activityQuery(action, page, FollowingWindow)
	if err != nil {
		return domain.SimplePage[domain.Notification]{}, err
	}

	following, err := s.followerRepo.FollowingIDs(ctx, profileID)
	if err != nil {
		return domain.SimplePage[domain.Notification]{}, fmt.Errorf("failed to load following: %w", err)
	}

	rows, err := s.notifRepo.ListByActors(ctx, following, profileID, q)
	if err != nil {
		return domain.SimplePage[domain.Notification]{}, err
	}
	return domain.NewSimplePage(rows, q.Page), nil
}

// Publish stores the notification and writes it through to the recipient's
// cached feed. A cache failure is logged only.
func (s *service) Publish(ctx context.Context, notif *domain.Notification) error {
	if err := s.notifRepo.Create(ctx, notif); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	if err := s.feed.Push(ctx, notif); err != nil {
		s.logger.Warn("Failed to cache notification", "notification_id", notif.ID, "profile_id", notif.ProfileID, "error", err)
	}
	return nil
}

func (s *service) activityQuery(action domain.NotificationAction, page, months int) (domain.ActivityQuery, error) {
	if page == 0 {
		page = 1
	}
	if page < 1 || page > domain.MaxActivityPage {
		return domain.ActivityQuery{}, fmt.Errorf("%w: page must be between 1 and %d", domain.ErrValidation, domain.MaxActivityPage)
	}

	return domain.ActivityQuery{
		Action: action,
		Since:  s.now().AddDate(0, -months, 0),
		Page:   domain.NewPageParams(page, PageSize),
	}, nil
}
