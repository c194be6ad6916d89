package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"social-account/internal/domain"
)

type EmailVerificationRepository interface {
	Create(ctx context.Context, v *domain.EmailVerification) error
	CountByUser(ctx context.Context, userID int64) (int64, error)
	CountByUserSince(ctx context.Context, userID int64, since time.Time) (int64, error)
	DeleteByUser(ctx context.Context, userID int64) error
	GetByTokens(ctx context.Context, userToken, randomToken string) (*domain.EmailVerification, error)
}

type emailVerificationRepository struct {
	db *sqlx.DB
}

func NewEmailVerificationRepository(db *sqlx.DB) EmailVerificationRepository {
	return &emailVerificationRepository{db: db}
}

func (r *emailVerificationRepository) Create(ctx context.Context, v *domain.EmailVerification) error {
	query := `
		INSERT INTO email_verifications (user_id, email, user_token, random_token)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	return r.db.QueryRowxContext(ctx, query,
		v.UserID, v.Email, v.UserToken, v.RandomToken,
	).Scan(&v.ID, &v.CreatedAt)
}

func (r *emailVerificationRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM email_verifications WHERE user_id = $1`
	err := r.db.GetContext(ctx, &count, query, userID)
	return count, err
}

func (r *emailVerificationRepository) CountByUserSince(ctx context.Context, userID int64, since time.Time) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM email_verifications WHERE user_id = $1 AND created_at > $2`
	err := r.db.GetContext(ctx, &count, query, userID, since)
	return count, err
}

func (r *emailVerificationRepository) DeleteByUser(ctx context.Context, userID int64) error {
	query := `DELETE FROM email_verifications WHERE user_id = $1`
	_, err := r.db.ExecContext(ctx, query, userID)
	return err
}

func (r *emailVerificationRepository) GetByTokens(ctx context.Context, userToken, randomToken string) (*domain.EmailVerification, error) {
	var v domain.EmailVerification
	query := `
		SELECT id, user_id, email, user_token, random_token, created_at
		FROM email_verifications
		WHERE user_token = $1 AND random_token = $2
		LIMIT 1`

	err := r.db.GetContext(ctx, &v, query, userToken, randomToken)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}
