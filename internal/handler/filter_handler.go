package handler

import (
	"github.com/gofiber/fiber/v2"

	"social-account/internal/domain"
	"social-account/internal/middleware"
	"social-account/internal/service/filter"
)

var filterFlash = map[domain.FilterKind]string{
	domain.FilterMute:  "USER_MUTED",
	domain.FilterBlock: "USER_BLOCKED",
}

type FilterHandler struct {
	filterService filter.Service
}

func NewFilterHandler(filterService filter.Service) *FilterHandler {
	return &FilterHandler{filterService: filterService}
}

func (h *FilterHandler) Mute(c *fiber.Ctx) error {
	return h.apply(c, domain.FilterMute)
}

func (h *FilterHandler) Block(c *fiber.Ctx) error {
	return h.apply(c, domain.FilterBlock)
}

func (h *FilterHandler) apply(c *fiber.Ctx, kind domain.FilterKind) error {
	profile, err := middleware.GetProfile(c)
	if err != nil {
		return err
	}

	var input domain.ApplyFilterInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.UnprocessableEntity("Invalid request body")
	}
	if err := validateStruct(input); err != nil {
		return err
	}

	if _, err := h.filterService.Apply(c.Context(), profile.ID, kind, input); err != nil {
		return err
	}

	return redirectBack(c, FlashStatus, middleware.T(c, filterFlash[kind]))
}
