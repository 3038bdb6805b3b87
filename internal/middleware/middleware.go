package middleware

import (
	"errors"
	"strings"

	"recipe-dashboard/domain"
	"recipe-dashboard/internal/api/presenters"
	"recipe-dashboard/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

const SessionIDKey = "session_id"

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		SessionMiddleware(jwtService jwt.JWTService) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,DELETE,OPTIONS",
	})
}

// SessionMiddleware resolves the bearer token to a session id and stores it
// in c.Locals(SessionIDKey).
func (m *middleware) SessionMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}

		sessionID, err := jwtService.GetSessionIDByToken(token)
		if err != nil {
			msg := domain.MessageFailedTokenInvalid
			if errors.Is(err, domain.ErrTokenExpired) {
				msg = domain.ErrTokenExpired.Error()
			}
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, msg, err)
		}

		c.Locals(SessionIDKey, sessionID)
		return c.Next()
	}
}
