package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/newsletter-studio/backend/internal/apperrors"
	"github.com/newsletter-studio/backend/internal/auth"
	"github.com/newsletter-studio/backend/internal/config"
	"github.com/newsletter-studio/backend/internal/http/dto"
	"go.uber.org/zap"
)

const (
	CtxUserID    = "user_id"
	CtxUserEmail = "user_email"
)

// AuthMiddleware rejects the request with UNAUTHORIZED before any handler
// work when the Bearer token is missing or invalid.
func AuthMiddleware(cfg *config.Config, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, "missing authorization header")
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			return unauthorized(c, "invalid authorization format")
		}

		claims, err := auth.ParseJWT(cfg.JWTSecret, tokenStr)
		if err != nil {
			log.Debug("jwt parse error", zap.Error(err))
			return unauthorized(c, "invalid or expired token")
		}

		c.Locals(CtxUserID, claims.UserID)
		c.Locals(CtxUserEmail, claims.Email)

		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: msg,
		Code:  apperrors.CodeUnauthorized,
	})
}

func GetUserID(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(CtxUserID).(uuid.UUID)
	return id
}

func GetUserEmail(c *fiber.Ctx) string {
	email, _ := c.Locals(CtxUserEmail).(string)
	return email
}
