package middleware

import (
	"github.com/gofiber/fiber/v2"

	"social-account/internal/pkg/i18n"
)

const LocaleContextKey = "locale"

func Locale() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(LocaleContextKey, i18n.Match(c.Get(fiber.HeaderAcceptLanguage)))
		return c.Next()
	}
}

func GetLocale(c *fiber.Ctx) string {
	locale, ok := c.Locals(LocaleContextKey).(string)
	if !ok {
		return i18n.DefaultLocale
	}
	return locale
}

// T translates key into the request's locale.
func T(c *fiber.Ctx, key string) string {
	return i18n.Translate(GetLocale(c), key)
}
