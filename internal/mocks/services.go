package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"social-account/internal/domain"
	"social-account/internal/queue"
)

type EmailService struct {
	mock.Mock
}

func (m *EmailService) SendConfirmEmail(ctx context.Context, toEmail string, v *domain.EmailVerification) error {
	args := m.Called(ctx, toEmail, v)
	return args.Error(0)
}

type Publisher struct {
	mock.Mock
}

func (m *Publisher) Enqueue(ctx context.Context, event domain.FollowEvent) (queue.JobID, error) {
	args := m.Called(ctx, event)
	return queue.JobID(args.String(0)), args.Error(1)
}

type FeedCache struct {
	mock.Mock
}

func (m *FeedCache) RecentIDs(ctx context.Context, profileID int64) ([]int64, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *FeedCache) Get(ctx context.Context, id int64) (*domain.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *FeedCache) Push(ctx context.Context, notif *domain.Notification) error {
	args := m.Called(ctx, notif)
	return args.Error(0)
}

// Publishing is the only notification operation the fan-out worker needs.
type NotificationPublisher struct {
	mock.Mock
}

func (m *NotificationPublisher) Publish(ctx context.Context, notif *domain.Notification) error {
	args := m.Called(ctx, notif)
	return args.Error(0)
}
