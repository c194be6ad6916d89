package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"social-account/internal/domain"
	"social-account/internal/middleware"
	"social-account/internal/service/verification"
)

type VerificationHandler struct {
	verificationService verification.Service
	logger              *slog.Logger
}

func NewVerificationHandler(verificationService verification.Service, logger *slog.Logger) *VerificationHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &VerificationHandler{verificationService: verificationService, logger: logger}
}

func (h *VerificationHandler) Send(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	_, err = h.verificationService.Request(c.Context(), userID)
	switch {
	case err == nil:
		return redirectBack(c, FlashStatus, middleware.T(c, "VERIFICATION_SENT"))
	case errors.Is(err, domain.ErrRateLimited):
		return redirectBack(c, FlashError, middleware.T(c, "VERIFICATION_RATE_LIMITED"))
	case errors.Is(err, verification.ErrAlreadyVerified):
		return redirectBack(c, FlashError, middleware.T(c, "VERIFICATION_ALREADY_DONE"))
	default:
		h.logger.Error("Failed to send verification email", "user_id", userID, "error", err)
		return redirectBack(c, FlashError, middleware.T(c, "VERIFICATION_FAILED"))
	}
}

func (h *VerificationHandler) Confirm(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	verified, err := h.verificationService.Confirm(c.Context(), c.Params("userToken"), c.Params("randomToken"), userID)
	if err != nil {
		return err
	}
	if !verified {
		return c.SendStatus(fiber.StatusOK)
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}
