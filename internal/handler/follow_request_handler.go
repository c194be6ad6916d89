package handler

import (
	"github.com/gofiber/fiber/v2"

	"social-account/internal/domain"
	"social-account/internal/middleware"
	"social-account/internal/service/followrequest"
)

type FollowRequestHandler struct {
	followService followrequest.Service
}

func NewFollowRequestHandler(followService followrequest.Service) *FollowRequestHandler {
	return &FollowRequestHandler{followService: followService}
}

func (h *FollowRequestHandler) List(c *fiber.Ctx) error {
	profile, err := middleware.GetProfile(c)
	if err != nil {
		return err
	}

	var q struct {
		Page int `query:"page" validate:"omitempty,min=1"`
	}
	if err := c.QueryParser(&q); err != nil {
		return middleware.UnprocessableEntity("Invalid query parameters")
	}
	if err := validateStruct(q); err != nil {
		return err
	}

	result, err := h.followService.List(c.Context(), profile.ID, q.Page)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *FollowRequestHandler) Handle(c *fiber.Ctx) error {
	profile, err := middleware.GetProfile(c)
	if err != nil {
		return err
	}

	var input domain.HandleFollowRequestInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.UnprocessableEntity("Invalid request body")
	}
	if err := validateStruct(input); err != nil {
		return err
	}

	if err := h.followService.Handle(c.Context(), profile.ID, input); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"msg": "success"})
}

func (h *FollowRequestHandler) Create(c *fiber.Ctx) error {
	profile, err := middleware.GetProfile(c)
	if err != nil {
		return err
	}

	targetID, err := c.ParamsInt("profileId")
	if err != nil || targetID < 1 {
		return middleware.UnprocessableEntity("Invalid profile ID")
	}

	req, err := h.followService.Create(c.Context(), profile.ID, int64(targetID))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(req)
}
