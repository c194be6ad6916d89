package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"social-account/internal/domain"
)

const followRequestColumns = `id, follower_id, following_id, is_rejected, claimed_at, created_at`

// pgUniqueViolation is the SQLSTATE raised when a unique index rejects a row.
const pgUniqueViolation = "23505"

type FollowRequestRepository interface {
	Create(ctx context.Context, req *domain.FollowRequest) error
	ListPending(ctx context.Context, followingID int64, params domain.PageParams) ([]domain.FollowRequest, error)
	// Claim atomically takes the accept lease on a pending request addressed
	// to followingID. It returns nil when no claimable row exists.
	Claim(ctx context.Context, id, followingID int64, lease time.Duration) (*domain.FollowRequest, error)
	Release(ctx context.Context, id int64) error
	// Reject flags the request as rejected. Already rejected rows are
	// re-flagged; rows under an active accept lease are left alone.
	Reject(ctx context.Context, id, followingID int64, lease time.Duration) (*domain.FollowRequest, error)
	Delete(ctx context.Context, id, followingID int64) error
}

type followRequestRepository struct {
	db *sqlx.DB
}

func NewFollowRequestRepository(db *sqlx.DB) FollowRequestRepository {
	return &followRequestRepository{db: db}
}

func (r *followRequestRepository) Create(ctx context.Context, req *domain.FollowRequest) error {
	query := `
		INSERT INTO follow_requests (follower_id, following_id)
		VALUES ($1, $2)
		RETURNING id, is_rejected, created_at`

	err := r.db.QueryRowxContext(ctx, query, req.FollowerID, req.FollowingID).
		Scan(&req.ID, &req.IsRejected, &req.CreatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
		return domain.ErrConflict
	}
	return err
}

func (r *followRequestRepository) ListPending(ctx context.Context, followingID int64, params domain.PageParams) ([]domain.FollowRequest, error) {
	var requests []domain.FollowRequest
	query := `
		SELECT ` + followRequestColumns + ` FROM follow_requests
		WHERE following_id = $1 AND is_rejected = false
		ORDER BY id DESC
		LIMIT $2 OFFSET $3`

	err := r.db.SelectContext(ctx, &requests, query, followingID, params.Limit(), params.Offset())
	return requests, err
}

func (r *followRequestRepository) Claim(ctx context.Context, id, followingID int64, lease time.Duration) (*domain.FollowRequest, error) {
	var req domain.FollowRequest
	query := `
		UPDATE follow_requests
		SET claimed_at = NOW()
		WHERE id = $1 AND following_id = $2 AND is_rejected = false
			AND (claimed_at IS NULL OR claimed_at < NOW() - $3 * INTERVAL '1 second')
		RETURNING ` + followRequestColumns

	err := r.db.GetContext(ctx, &req, query, id, followingID, lease.Seconds())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *followRequestRepository) Release(ctx context.Context, id int64) error {
	query := `UPDATE follow_requests SET claimed_at = NULL WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *followRequestRepository) Reject(ctx context.Context, id, followingID int64, lease time.Duration) (*domain.FollowRequest, error) {
	var req domain.FollowRequest
	query := `
		UPDATE follow_requests
		SET is_rejected = true
		WHERE id = $1 AND following_id = $2
			AND (claimed_at IS NULL OR claimed_at < NOW() - $3 * INTERVAL '1 second')
		RETURNING ` + followRequestColumns

	err := r.db.GetContext(ctx, &req, query, id, followingID, lease.Seconds())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *followRequestRepository) Delete(ctx context.Context, id, followingID int64) error {
	query := `DELETE FROM follow_requests WHERE id = $1 AND following_id = $2`
	_, err := r.db.ExecContext(ctx, query, id, followingID)
	return err
}
