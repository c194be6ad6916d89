package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"social-account/internal/domain"
)

type UserFilterRepository interface {
	// FirstOrCreate relies on the unique index over all four columns, so
	// concurrent duplicates collapse into one row.
	FirstOrCreate(ctx context.Context, filter *domain.UserFilter) (created bool, err error)
}

type userFilterRepository struct {
	db *sqlx.DB
}

func NewUserFilterRepository(db *sqlx.DB) UserFilterRepository {
	return &userFilterRepository{db: db}
}

func (r *userFilterRepository) FirstOrCreate(ctx context.Context, filter *domain.UserFilter) (bool, error) {
	insert := `
		INSERT INTO user_filters (user_id, filterable_id, filterable_type, filter_type)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, filterable_id, filterable_type, filter_type) DO NOTHING
		RETURNING id`

	err := r.db.QueryRowxContext(ctx, insert,
		filter.UserID, filter.FilterableID, filter.FilterableType, filter.FilterType,
	).Scan(&filter.ID)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, err
	}

	existing := `
		SELECT id FROM user_filters
		WHERE user_id = $1 AND filterable_id = $2 AND filterable_type = $3 AND filter_type = $4`
	err = r.db.GetContext(ctx, &filter.ID, existing,
		filter.UserID, filter.FilterableID, filter.FilterableType, filter.FilterType)
	return false, err
}
