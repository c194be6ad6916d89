package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"social-account/internal/domain"
	"social-account/internal/service/auth"
)

const (
	UserContextKey    = "user"
	UserIDContextKey  = "user_id"
	ProfileContextKey = "profile"

	// AccessTokenCookie carries the access token for browser navigations,
	// such as the confirmation link in a verification email, which cannot
	// set an Authorization header.
	AccessTokenCookie = "access_token"
)

func AuthRequired(authService auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := accessToken(c)
		if err != nil {
			return err
		}

		claims, err := authService.ValidateAccessToken(token)
		if err != nil {
			return Unauthorized("Invalid or expired token")
		}

		user, profile, err := authService.ResolveAccount(c.Context(), claims.UserID)
		if err != nil {
			return Unauthorized("User not found")
		}

		c.Locals(UserContextKey, user)
		c.Locals(UserIDContextKey, user.ID)
		c.Locals(ProfileContextKey, profile)

		return c.Next()
	}
}

func accessToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		if token := c.Cookies(AccessTokenCookie); token != "" {
			return token, nil
		}
		return "", Unauthorized("Missing authorization header")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", Unauthorized("Invalid authorization header format")
	}
	return parts[1], nil
}

func GetCurrentUser(c *fiber.Ctx) *domain.User {
	user, ok := c.Locals(UserContextKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}

func GetCurrentProfile(c *fiber.Ctx) *domain.Profile {
	profile, ok := c.Locals(ProfileContextKey).(*domain.Profile)
	if !ok {
		return nil
	}
	return profile
}

func GetUserID(c *fiber.Ctx) (int64, error) {
	userID, ok := c.Locals(UserIDContextKey).(int64)
	if !ok || userID == 0 {
		return 0, Unauthorized("User not authenticated")
	}
	return userID, nil
}

func GetProfile(c *fiber.Ctx) (*domain.Profile, error) {
	profile := GetCurrentProfile(c)
	if profile == nil {
		return nil, Unauthorized("Profile not resolved")
	}
	return profile, nil
}
