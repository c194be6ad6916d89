package followrequest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"social-account/internal/domain"
	"social-account/internal/queue"
	"social-account/internal/repository"
)

const PageSize = 10

type Service interface {
	Create(ctx context.Context, followerProfileID, targetProfileID int64) (*domain.FollowRequest, error)
	List(ctx context.Context, profileID int64, page int) (domain.SimplePage[domain.FollowRequest], error)
	Accept(ctx context.Context, requestID, profileID int64) (queue.JobID, error)
	Reject(ctx context.Context, requestID, profileID int64) error
	Handle(ctx context.Context, profileID int64, input domain.HandleFollowRequestInput) error
}

type service struct {
	requestRepo  repository.FollowRequestRepository
	followerRepo repository.FollowerRepository
	profileRepo  repository.ProfileRepository
	publisher    queue.Publisher
	lease        time.Duration
	logger       *slog.Logger
	now          func() time.Time
}

func NewService(
	requestRepo repository.FollowRequestRepository,
	followerRepo repository.FollowerRepository,
	profileRepo repository.ProfileRepository,
	publisher queue.Publisher,
	lease time.Duration,
	logger *slog.Logger,
) Service {
	if logger == nil {
		logger = slog.Default()
	}
	if lease <= 0 {
		lease = time.Minute
	}
	return &service{
		requestRepo:  requestRepo,
		followerRepo: followerRepo,
		profileRepo:  profileRepo,
		publisher:    publisher,
		lease:        lease,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *service) Create(ctx context.Context, followerProfileID, targetProfileID int64) (*domain.FollowRequest, error) {
	target, err := s.profileRepo.GetByID(ctx, targetProfileID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, fmt.Errorf("%w: profile", domain.ErrNotFound)
	}
	if target.ID == followerProfileID {
		return nil, fmt.Errorf("%w: cannot follow yourself", domain.ErrForbidden)
	}

	following, err := s.followerRepo.Exists(ctx, followerProfileID, target.ID)
	if err != nil {
		return nil, err
	}
	if following {
		return nil, fmt.Errorf("%w: already following", domain.ErrConflict)
	}

	req := &domain.FollowRequest{
		FollowerID:  followerProfileID,
		FollowingID: target.ID,
	}
	if err := s.requestRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *service) List(ctx context.Context, profileID int64, page int) (domain.SimplePage[domain.FollowRequest], error) {
	if page < 0 {
		return domain.SimplePage[domain.FollowRequest]{}, fmt.Errorf("%w: page must be positive", domain.ErrValidation)
	}

	params := domain.NewPageParams(page, PageSize)
	rows, err := s.requestRepo.ListPending(ctx, profileID, params)
	if err != nil {
		return domain.SimplePage[domain.FollowRequest]{}, err
	}

	result := domain.NewSimplePage(rows, params)
	if len(result.Data) == 0 {
		return result, nil
	}

	ids := make([]int64, 0, len(result.Data))
	for _, r := range result.Data {
		ids = append(ids, r.FollowerID)
	}
	profiles, err := s.profileRepo.ListByIDs(ctx, ids)
	if err != nil {
		return domain.SimplePage[domain.FollowRequest]{}, fmt.Errorf("failed to load followers: %w", err)
	}

	byID := make(map[int64]*domain.Profile, len(profiles))
	for i := range profiles {
		byID[profiles[i].ID] = &profiles[i]
	}
	for i := range result.Data {
		result.Data[i].Follower = byID[result.Data[i].FollowerID]
	}
	return result, nil
}

// Accept turns a pending request into a follower edge. The edge is written
// and the fan-out job enqueued before the request row is removed, so a
// failure at any step leaves the request in place to be accepted again.
func (s *service) Accept(ctx context.Context, requestID, profileID int64) (queue.JobID, error) {
	req, err := s.requestRepo.Claim(ctx, requestID, profileID, s.lease)
	if err != nil {
		return "", err
	}
	if req == nil {
		return "", fmt.Errorf("%w: follow request", domain.ErrNotFound)
	}

	edge := &domain.Follower{
		ProfileID:   req.FollowerID,
		FollowingID: req.FollowingID,
	}
	if _, err := s.followerRepo.Create(ctx, edge); err != nil {
		s.release(ctx, req.ID)
		return "", fmt.Errorf("failed to create follower: %w", err)
	}

	jobID, err := s.publisher.Enqueue(ctx, domain.NewFollowEvent(edge, s.now()))
	if err != nil {
		s.release(ctx, req.ID)
		return "", fmt.Errorf("failed to enqueue follow event: %w", err)
	}

	// The claim stays on the row until the lease runs out, so a retry
	// after a failed delete cannot race a concurrent accept.
	if err := s.requestRepo.Delete(ctx, req.ID, profileID); err != nil {
		return jobID, fmt.Errorf("failed to delete follow request: %w", err)
	}

	s.logger.Info("Follow request accepted",
		"request_id", req.ID,
		"follower_id", req.FollowerID,
		"following_id", req.FollowingID,
		"job_id", jobID,
	)
	return jobID, nil
}

func (s *service) Reject(ctx context.Context, requestID, profileID int64) error {
	req, err := s.requestRepo.Reject(ctx, requestID, profileID, s.lease)
	if err != nil {
		return err
	}
	if req == nil {
		return fmt.Errorf("%w: follow request", domain.ErrNotFound)
	}
	return nil
}

func (s *service) Handle(ctx context.Context, profileID int64, input domain.HandleFollowRequestInput) error {
	if input.Resolve() == domain.FollowRequestAccept {
		_, err := s.Accept(ctx, input.ID, profileID)
		return err
	}
	return s.Reject(ctx, input.ID, profileID)
}

func (s *service) release(ctx context.Context, id int64) {
	if err := s.requestRepo.Release(context.WithoutCancel(ctx), id); err != nil {
		s.logger.Error("Failed to release follow request claim", "request_id", id, "error", err)
	}
}
