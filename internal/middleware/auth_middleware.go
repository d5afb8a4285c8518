package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/opphub/opphub/internal/config"
)

const (
	LocalUserID    = "user_id"
	LocalUserEmail = "user_email"
	LocalUserName  = "user_name"
)

type identityClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// Auth verifies the identity provider's bearer token and stores the caller's
// identity in request locals. No token, no personalized state: the request is
// rejected with 401.
func Auth() fiber.Handler {
	secret := []byte(config.LoadAuthConfig().JWTSecret)
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		claims := &identityClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid || claims.Subject == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals(LocalUserID, claims.Subject)
		c.Locals(LocalUserEmail, claims.Email)
		c.Locals(LocalUserName, claims.Name)
		return c.Next()
	}
}

// ReminderToken guards the external reminder trigger with a shared secret
// instead of a user identity.
func ReminderToken() fiber.Handler {
	expected := config.LoadAuthConfig().ReminderToken
	return func(c *fiber.Ctx) error {
		if expected != "" && c.Get("X-Reminder-Token") != expected {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid reminder token")
		}
		return c.Next()
	}
}
