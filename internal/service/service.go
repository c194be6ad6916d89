package service

import (
	"log/slog"

	"social-account/internal/cache"
	"social-account/internal/config"
	"social-account/internal/queue"
	"social-account/internal/repository"
	"social-account/internal/service/auth"
	"social-account/internal/service/email"
	"social-account/internal/service/filter"
	"social-account/internal/service/followrequest"
	"social-account/internal/service/notification"
	"social-account/internal/service/verification"
)

type Services struct {
	Auth          auth.Service
	Email         email.Service
	Notification  notification.Service
	FollowRequest followrequest.Service
	Filter        filter.Service
	Verification  verification.Service
}

func NewServices(
	repos *repository.Repositories,
	feed cache.FeedCache,
	publisher queue.Publisher,
	emailService email.Service,
	cfg *config.Config,
	logger *slog.Logger,
) *Services {
	return &Services{
		Auth:          auth.NewService(repos.User, repos.Profile, cfg),
		Email:         emailService,
		Notification:  notification.NewService(repos.Notification, repos.Follower, feed, logger),
		FollowRequest: followrequest.NewService(repos.FollowRequest, repos.Follower, repos.Profile, publisher, cfg.FollowAcceptLease, logger),
		Filter:        filter.NewService(repos.UserFilter, repos.Profile),
		Verification:  verification.NewService(repos.EmailVerification, repos.User, emailService, logger),
	}
}
