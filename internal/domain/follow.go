package domain

import "time"

type FollowRequest struct {
	ID          int64      `json:"id" db:"id"`
	FollowerID  int64      `json:"follower_id" db:"follower_id"`
	FollowingID int64      `json:"following_id" db:"following_id"`
	IsRejected  bool       `json:"is_rejected" db:"is_rejected"`
	ClaimedAt   *time.Time `json:"-" db:"claimed_at"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`

	Follower *Profile `json:"follower,omitempty" db:"-"`
}

type FollowRequestState string

const (
	FollowPending  FollowRequestState = "pending"
	FollowAccepted FollowRequestState = "accepted"
	FollowRejected FollowRequestState = "rejected"
)

// State of a row that still exists. Accepted requests are deleted, so a
// stored row is either pending or rejected.
func (r *FollowRequest) State() FollowRequestState {
	if r.IsRejected {
		return FollowRejected
	}
	return FollowPending
}

// Follower is a directed edge: ProfileID follows FollowingID.
type Follower struct {
	ID          int64     `json:"id" db:"id"`
	ProfileID   int64     `json:"profile_id" db:"profile_id"`
	FollowingID int64     `json:"following_id" db:"following_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// FollowEvent is the fan-out job payload produced when a request is accepted.
type FollowEvent struct {
	EdgeID      int64     `json:"edge_id"`
	ProfileID   int64     `json:"profile_id"`
	FollowingID int64     `json:"following_id"`
	AcceptedAt  time.Time `json:"accepted_at"`
}

func NewFollowEvent(edge *Follower, at time.Time) FollowEvent {
	return FollowEvent{
		EdgeID:      edge.ID,
		ProfileID:   edge.ProfileID,
		FollowingID: edge.FollowingID,
		AcceptedAt:  at,
	}
}

type FollowRequestAction string

const (
	FollowRequestAccept FollowRequestAction = "accept"
	FollowRequestReject FollowRequestAction = "reject"
)

// HandleFollowRequestInput is bound from the accept/reject form. Anything
// other than "accept" is treated as a rejection.
type HandleFollowRequestInput struct {
	Action string `json:"action" form:"action" validate:"required,max=10"`
	ID     int64  `json:"id" form:"id" validate:"required,min=1"`
}

func (in HandleFollowRequestInput) Resolve() FollowRequestAction {
	if in.Action == string(FollowRequestAccept) {
		return FollowRequestAccept
	}
	return FollowRequestReject
}
