package domain

import "time"

type Notification struct {
	ID        int64              `json:"id" db:"id"`
	ProfileID int64              `json:"profile_id" db:"profile_id"`
	ActorID   int64              `json:"actor_id" db:"actor_id"`
	Action    NotificationAction `json:"action" db:"action"`
	CreatedAt time.Time          `json:"created_at" db:"created_at"`
}

type NotificationAction string

const (
	ActionComment NotificationAction = "comment"
	ActionFollow  NotificationAction = "follow"
	ActionMention NotificationAction = "mention"
	ActionLike    NotificationAction = "like"
	ActionShare   NotificationAction = "share"
)

// IsFilterable reports whether the action may be used to narrow an activity listing.
func (a NotificationAction) IsFilterable() bool {
	switch a {
	case ActionComment, ActionFollow, ActionMention:
		return true
	default:
		return false
	}
}

// ActivityQuery narrows an activity listing. Action is ignored unless filterable.
type ActivityQuery struct {
	Action NotificationAction
	Since  time.Time
	Page   PageParams
}
