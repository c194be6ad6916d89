package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"social-account/internal/domain"
)

const notificationColumns = `id, profile_id, actor_id, action, created_at`

type NotificationRepository interface {
	Create(ctx context.Context, notif *domain.Notification) error
	ListLatest(ctx context.Context, profileID int64, limit int) ([]domain.Notification, error)
	ListByProfile(ctx context.Context, profileID int64, q domain.ActivityQuery) ([]domain.Notification, error)
	ListByActors(ctx context.Context, actorIDs []int64, excludeProfileID int64, q domain.ActivityQuery) ([]domain.Notification, error)
}

type notificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notif *domain.Notification) error {
	query := `
		INSERT INTO notifications (profile_id, actor_id, action)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	return r.db.QueryRowxContext(ctx, query,
		notif.ProfileID, notif.ActorID, notif.Action,
	).Scan(&notif.ID, &notif.CreatedAt)
}

func (r *notificationRepository) ListLatest(ctx context.Context, profileID int64, limit int) ([]domain.Notification, error) {
	var notifications []domain.Notification
	query := `
		SELECT ` + notificationColumns + ` FROM notifications
		WHERE profile_id = $1
		ORDER BY id DESC
		LIMIT $2`

	err := r.db.SelectContext(ctx, &notifications, query, profileID, limit)
	return notifications, err
}

// ListByProfile returns one simple page (PerPage+1 rows) of a profile's
// notifications created after q.Since.
func (r *notificationRepository) ListByProfile(ctx context.Context, profileID int64, q domain.ActivityQuery) ([]domain.Notification, error) {
	var notifications []domain.Notification

	if q.Action.IsFilterable() {
		query := `
			SELECT ` + notificationColumns + ` FROM notifications
			WHERE profile_id = $1 AND action = $2 AND DATE(created_at) > DATE($3)
			ORDER BY id DESC
			LIMIT $4 OFFSET $5`
		err := r.db.SelectContext(ctx, &notifications, query,
			profileID, q.Action, q.Since, q.Page.Limit(), q.Page.Offset())
		return notifications, err
	}

	query := `
		SELECT ` + notificationColumns + ` FROM notifications
		WHERE profile_id = $1 AND DATE(created_at) > DATE($2)
		ORDER BY id DESC
		LIMIT $3 OFFSET $4`
	err := r.db.SelectContext(ctx, &notifications, query,
		profileID, q.Since, q.Page.Limit(), q.Page.Offset())
	return notifications, err
}

func (r *notificationRepository) ListByActors(ctx context.Context, actorIDs []int64, excludeProfileID int64, q domain.ActivityQuery) ([]domain.Notification, error) {
	if len(actorIDs) == 0 {
		return []domain.Notification{}, nil
	}

	var (
		query string
		args  []interface{}
		err   error
	)
	if q.Action.IsFilterable() {
		query, args, err = sqlx.In(`
			SELECT `+notificationColumns+` FROM notifications
			WHERE actor_id IN (?) AND profile_id <> ? AND action = ? AND DATE(created_at) > DATE(?)
			ORDER BY id DESC
			LIMIT ? OFFSET ?`,
			actorIDs, excludeProfileID, q.Action, q.Since, q.Page.Limit(), q.Page.Offset())
	} else {
		query, args, err = sqlx.In(`
			SELECT `+notificationColumns+` FROM notifications
			WHERE actor_id IN (?) AND profile_id <> ? AND DATE(created_at) > DATE(?)
			ORDER BY id DESC
			LIMIT ? OFFSET ?`,
			actorIDs, excludeProfileID, q.Since, q.Page.Limit(), q.Page.Offset())
	}
	if err != nil {
		return nil, err
	}

	query = r.db.Rebind(query)
	var notifications []domain.Notification
	err = r.db.SelectContext(ctx, &notifications, query, args...)
	return notifications, err
}
