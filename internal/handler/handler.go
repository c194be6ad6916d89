package handler

import (
	"log/slog"

	"social-account/internal/service"
)

type Handlers struct {
	Notification  *NotificationHandler
	Verification  *VerificationHandler
	Filter        *FilterHandler
	FollowRequest *FollowRequestHandler
}

func NewHandlers(services *service.Services, logger *slog.Logger) *Handlers {
	return &Handlers{
		Notification:  NewNotificationHandler(services.Notification),
		Verification:  NewVerificationHandler(services.Verification, logger),
		Filter:        NewFilterHandler(services.Filter),
		FollowRequest: NewFollowRequestHandler(services.FollowRequest),
	}
}
