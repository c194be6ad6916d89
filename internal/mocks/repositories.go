package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"social-account/internal/domain"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) GetUnverifiedByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) MarkEmailVerified(ctx context.Context, id int64, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

type ProfileRepository struct {
	mock.Mock
}

func (m *ProfileRepository) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *ProfileRepository) ListByIDs(ctx context.Context, ids []int64) ([]domain.Profile, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

type NotificationRepository struct {
	mock.Mock
}

func (m *NotificationRepository) Create(ctx context.Context, notif *domain.Notification) error {
	args := m.Called(ctx, notif)
	return args.Error(0)
}

func (m *NotificationRepository) ListLatest(ctx context.Context, profileID int64, limit int) ([]domain.Notification, error) {
	args := m.Called(ctx, profileID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *NotificationRepository) ListByProfile(ctx context.Context, profileID int64, q domain.ActivityQuery) ([]domain.Notification, error) {
	args := m.Called(ctx, profileID, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *NotificationRepository) ListByActors(ctx context.Context, actorIDs []int64, excludeProfileID int64, q domain.ActivityQuery) ([]domain.Notification, error) {
	args := m.Called(ctx, actorIDs, excludeProfileID, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

type FollowerRepository struct {
	mock.Mock
}

func (m *FollowerRepository) Create(ctx context.Context, edge *domain.Follower) (bool, error) {
	args := m.Called(ctx, edge)
	return args.Bool(0), args.Error(1)
}

func (m *FollowerRepository) Exists(ctx context.Context, profileID, followingID int64) (bool, error) {
	args := m.Called(ctx, profileID, followingID)
	return args.Bool(0), args.Error(1)
}

func (m *FollowerRepository) FollowingIDs(ctx context.Context, profileID int64) ([]int64, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

type FollowRequestRepository struct {
	mock.Mock
}

func (m *FollowRequestRepository) Create(ctx context.Context, req *domain.FollowRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *FollowRequestRepository) ListPending(ctx context.Context, followingID int64, params domain.PageParams) ([]domain.FollowRequest, error) {
	args := m.Called(ctx, followingID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FollowRequest), args.Error(1)
}

func (m *FollowRequestRepository) Claim(ctx context.Context, id, followingID int64, lease time.Duration) (*domain.FollowRequest, error) {
	args := m.Called(ctx, id, followingID, lease)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FollowRequest), args.Error(1)
}

func (m *FollowRequestRepository) Release(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *FollowRequestRepository) Reject(ctx context.Context, id, followingID int64, lease time.Duration) (*domain.FollowRequest, error) {
	args := m.Called(ctx, id, followingID, lease)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FollowRequest), args.Error(1)
}

func (m *FollowRequestRepository) Delete(ctx context.Context, id, followingID int64) error {
	args := m.Called(ctx, id, followingID)
	return args.Error(0)
}

type UserFilterRepository struct {
	mock.Mock
}

func (m *UserFilterRepository) FirstOrCreate(ctx context.Context, filter *domain.UserFilter) (bool, error) {
	args := m.Called(ctx, filter)
	return args.Bool(0), args.Error(1)
}

type EmailVerificationRepository struct {
	mock.Mock
}

func (m *EmailVerificationRepository) Create(ctx context.Context, v *domain.EmailVerification) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *EmailVerificationRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *EmailVerificationRepository) CountByUserSince(ctx context.Context, userID int64, since time.Time) (int64, error) {
	args := m.Called(ctx, userID, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *EmailVerificationRepository) DeleteByUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *EmailVerificationRepository) GetByTokens(ctx context.Context, userToken, randomToken string) (*domain.EmailVerification, error) {
	args := m.Called(ctx, userToken, randomToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmailVerification), args.Error(1)
}
