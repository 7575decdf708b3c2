package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/newsletter-studio/backend/internal/apperrors"
	"github.com/newsletter-studio/backend/internal/http/dto"
	"github.com/newsletter-studio/backend/internal/middleware"
	"go.uber.org/zap"
)

// respondError maps a coded application error to its HTTP status. Internal
// errors are logged and not echoed to the client.
func respondError(c *fiber.Ctx, log *zap.Logger, err error) error {
	reqID, _ := c.Locals(middleware.CtxRequestID).(string)

	code := apperrors.CodeOf(err)
	switch code {
	case apperrors.CodeValidation:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error(), Code: code, RequestID: reqID})
	case apperrors.CodeNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error(), Code: code, RequestID: reqID})
	case apperrors.CodeUnauthorized:
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: err.Error(), Code: code, RequestID: reqID})
	default:
		log.Error("internal error", zap.String("request_id", reqID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error", Code: apperrors.CodeInternal, RequestID: reqID})
	}
}

func badRequest(c *fiber.Ctx, msg string) error {
	reqID, _ := c.Locals(middleware.CtxRequestID).(string)
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msg, Code: apperrors.CodeValidation, RequestID: reqID})
}
