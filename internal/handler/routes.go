package handler

import "github.com/gofiber/fiber/v2"

// RegisterAccountRoutes mounts the account endpoints on a group that has
// already resolved the acting user and profile.
func (h *Handlers) RegisterAccountRoutes(account fiber.Router) {
	account.Get("/activity", h.Notification.Activity)
	account.Get("/activity/following", h.Notification.FollowingActivity)
	account.Get("/notifications/recent", h.Notification.Recent)

	account.Post("/verify-email", h.Verification.Send)
	account.Get("/confirm-email/:userToken/:randomToken", h.Verification.Confirm)

	account.Post("/mute", h.Filter.Mute)
	account.Post("/block", h.Filter.Block)

	account.Get("/follow-requests", h.FollowRequest.List)
	account.Post("/follow-requests", h.FollowRequest.Handle)
	account.Post("/follow-requests/:profileId", h.FollowRequest.Create)
}
