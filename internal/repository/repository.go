package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	User              UserRepository
	Profile           ProfileRepository
	Notification      NotificationRepository
	Follower          FollowerRepository
	FollowRequest     FollowRequestRepository
	UserFilter        UserFilterRepository
	EmailVerification EmailVerificationRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:              NewUserRepository(db),
		Profile:           NewProfileRepository(db),
		Notification:      NewNotificationRepository(db),
		Follower:          NewFollowerRepository(db),
		FollowRequest:     NewFollowRequestRepository(db),
		UserFilter:        NewUserFilterRepository(db),
		EmailVerification: NewEmailVerificationRepository(db),
	}
}
