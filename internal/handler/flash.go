package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	FlashStatus = "status"
	FlashError  = "error"
)

// redirectBack sends the browser back to the referring page with a one-shot
// flash cookie the page reads and clears.
func redirectBack(c *fiber.Ctx, kind, message string) error {
	c.Cookie(&fiber.Cookie{
		Name:     "flash_" + kind,
		Value:    message,
		Path:     "/",
		Expires:  time.Now().Add(time.Minute),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	back := c.Get(fiber.HeaderReferer)
	if back == "" {
		back = "/"
	}
	return c.Redirect(back, fiber.StatusSeeOther)
}
