package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/newsletter-studio/backend/internal/apperrors"
	"github.com/newsletter-studio/backend/internal/http/dto"
	"github.com/newsletter-studio/backend/internal/middleware"
	"github.com/newsletter-studio/backend/internal/repositories"
	"go.uber.org/zap"
)

type UserHandler struct {
	userRepo *repositories.UserRepo
	log      *zap.Logger
}

func NewUserHandler(userRepo *repositories.UserRepo, log *zap.Logger) *UserHandler {
	return &UserHandler{userRepo: userRepo, log: log}
}

func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	user, err := h.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return respondError(c, h.log, apperrors.NotFound("user not found"))
		}
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true, Data: user})
}

func (h *UserHandler) Ping(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if err := h.userRepo.UpdateLastActive(c.Context(), userID); err != nil {
		h.log.Warn("ping update failed", zap.Error(err))
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
