package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"social-account/internal/domain"
)

type FollowerRepository interface {
	// Create inserts the edge unless it already exists. created is false when
	// an existing edge was returned instead.
	Create(ctx context.Context, edge *domain.Follower) (created bool, err error)
	Exists(ctx context.Context, profileID, followingID int64) (bool, error)
	FollowingIDs(ctx context.Context, profileID int64) ([]int64, error)
}

type followerRepository struct {
	db *sqlx.DB
}

func NewFollowerRepository(db *sqlx.DB) FollowerRepository {
	return &followerRepository{db: db}
}

func (r *followerRepository) Create(ctx context.Context, edge *domain.Follower) (bool, error) {
	query := `
		INSERT INTO followers (profile_id, following_id)
		VALUES ($1, $2)
		ON CONFLICT (profile_id, following_id) DO NOTHING
		RETURNING id, created_at`

	err := r.db.QueryRowxContext(ctx, query, edge.ProfileID, edge.FollowingID).Scan(&edge.ID, &edge.CreatedAt)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, err
	}

	existing := `SELECT id, created_at FROM followers WHERE profile_id = $1 AND following_id = $2`
	if err := r.db.QueryRowxContext(ctx, existing, edge.ProfileID, edge.FollowingID).Scan(&edge.ID, &edge.CreatedAt); err != nil {
		return false, err
	}
	return false, nil
}

func (r *followerRepository) Exists(ctx context.Context, profileID, followingID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM followers WHERE profile_id = $1 AND following_id = $2)`
	err := r.db.GetContext(ctx, &exists, query, profileID, followingID)
	return exists, err
}

func (r *followerRepository) FollowingIDs(ctx context.Context, profileID int64) ([]int64, error) {
	var ids []int64
	query := `SELECT following_id FROM followers WHERE profile_id = $1`
	err := r.db.SelectContext(ctx, &ids, query, profileID)
	return ids, err
}
