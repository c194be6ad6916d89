package handler

import (
	"github.com/gofiber/fiber/v2"

	"social-account/internal/domain"
	"social-account/internal/middleware"
	"social-account/internal/service/notification"
)

type activityQuery struct {
	Page   int    `query:"page" validate:"omitempty,min=1"`
	Action string `query:"a" validate:"omitempty,max=20,alphadash"`
}

type NotificationHandler struct {
	notifService notification.Service
}

func NewNotificationHandler(notifService notification.Service) *NotificationHandler {
	return &NotificationHandler{notifService: notifService}
}

func (h *NotificationHandler) Activity(c *fiber.Ctx) error {
	profile, q, err := h.activityParams(c)
	if err != nil {
		return err
	}

	result, err := h.notifService.ListRecent(c.Context(), profile.ID, domain.NotificationAction(q.Action), q.Page)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *NotificationHandler) FollowingActivity(c *fiber.Ctx) error {
	profile, q, err := h.activityParams(c)
	if err != nil {
		return err
	}

	result, err := h.notifService.ListFollowingActivity(c.Context(), profile.ID, domain.NotificationAction(q.Action), q.Page)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// Recent returns the cached feed; entries whose payload expired are null.
func (h *NotificationHandler) Recent(c *fiber.Ctx) error {
	profile, err := middleware.GetProfile(c)
	if err != nil {
		return err
	}

	feed, err := h.notifService.Fetch(c.Context(), profile.ID)
	if err != nil {
		return err
	}

	items, err := feed.Collect(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(items)
}

func (h *NotificationHandler) activityParams(c *fiber.Ctx) (*domain.Profile, activityQuery, error) {
	var q activityQuery

	profile, err := middleware.GetProfile(c)
	if err != nil {
		return nil, q, err
	}

	if err := c.QueryParser(&q); err != nil {
		return nil, q, middleware.UnprocessableEntity("Invalid query parameters")
	}
	if err := validateStruct(q); err != nil {
		return nil, q, err
	}

	return profile, q, nil
}
