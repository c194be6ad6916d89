package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-account/internal/domain"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "postgres"), mock
}

func TestFollowerRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("Inserts new edge", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewFollowerRepository(db)

		mock.ExpectQuery(`INSERT INTO followers`).
			WithArgs(int64(2), int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(40), now))

		edge := &domain.Follower{ProfileID: 2, FollowingID: 1}
		created, err := repo.Create(ctx, edge)

		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, int64(40), edge.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Returns existing edge on conflict", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewFollowerRepository(db)

		mock.ExpectQuery(`INSERT INTO followers`).
			WithArgs(int64(2), int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}))
		mock.ExpectQuery(`SELECT id, created_at FROM followers`).
			WithArgs(int64(2), int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(39), now))

		edge := &domain.Follower{ProfileID: 2, FollowingID: 1}
		created, err := repo.Create(ctx, edge)

		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, int64(39), edge.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFollowRequestRepository_Create_DuplicatePending(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFollowRequestRepository(db)

	mock.ExpectQuery(`INSERT INTO follow_requests`).
		WithArgs(int64(5), int64(6)).
		WillReturnError(&pq.Error{Code: pgUniqueViolation})

	err := repo.Create(context.Background(), &domain.FollowRequest{FollowerID: 5, FollowingID: 6})

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFollowRequestRepository_Claim(t *testing.T) {
	ctx := context.Background()
	columns := []string{"id", "follower_id", "following_id", "is_rejected", "claimed_at", "created_at"}

	t.Run("Claims pending row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewFollowRequestRepository(db)
		now := time.Now()

		mock.ExpectQuery(`UPDATE follow_requests\s+SET claimed_at = NOW\(\)`).
			WithArgs(int64(7), int64(3), float64(60)).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(7), int64(9), int64(3), false, now, now))

		req, err := repo.Claim(ctx, 7, 3, time.Minute)

		require.NoError(t, err)
		require.NotNil(t, req)
		assert.Equal(t, int64(9), req.FollowerID)
		assert.Equal(t, domain.FollowPending, req.State())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Nothing to claim", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewFollowRequestRepository(db)

		mock.ExpectQuery(`UPDATE follow_requests`).
			WithArgs(int64(7), int64(3), float64(60)).
			WillReturnRows(sqlmock.NewRows(columns))

		req, err := repo.Claim(ctx, 7, 3, time.Minute)

		require.NoError(t, err)
		assert.Nil(t, req)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserFilterRepository_FirstOrCreate_Existing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserFilterRepository(db)

	mock.ExpectQuery(`INSERT INTO user_filters`).
		WithArgs(int64(1), int64(2), "profile", "mute").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT id FROM user_filters`).
		WithArgs(int64(1), int64(2), "profile", "mute").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

	filter := domain.NewUserFilter(1, domain.ProfileTarget{ID: 2}, domain.FilterMute)
	created, err := repo.FirstOrCreate(context.Background(), filter)

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(11), filter.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_ListByActors(t *testing.T) {
	ctx := context.Background()
	q := domain.ActivityQuery{Since: time.Now().AddDate(0, -1, 0), Page: domain.NewPageParams(1, 30)}

	t.Run("No actors skips the query", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewNotificationRepository(db)

		rows, err := repo.ListByActors(ctx, nil, 1, q)

		require.NoError(t, err)
		assert.Empty(t, rows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Expands actor ids", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewNotificationRepository(db)
		now := time.Now()

		mock.ExpectQuery(`actor_id IN \(\$1, \$2\) AND profile_id <> \$3`).
			WithArgs(int64(4), int64(5), int64(1), sqlmock.AnyArg(), int64(31), int64(0)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "profile_id", "actor_id", "action", "created_at"}).
				AddRow(int64(20), int64(8), int64(4), "comment", now))

		rows, err := repo.ListByActors(ctx, []int64{4, 5}, 1, q)

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, domain.ActionComment, rows[0].Action)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEmailVerificationRepository_GetByTokens_Missing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEmailVerificationRepository(db)

	mock.ExpectQuery(`FROM email_verifications`).
		WithArgs("u", "r").
		WillReturnError(sql.ErrNoRows)

	v, err := repo.GetByTokens(context.Background(), "u", "r")

	require.NoError(t, err)
	assert.Nil(t, v)
	assert.NoError(t, mock.ExpectationsWereMet())
}
