package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/newsletter-studio/backend/internal/apperrors"
	"github.com/newsletter-studio/backend/internal/auth"
	"github.com/newsletter-studio/backend/internal/config"
	"github.com/newsletter-studio/backend/internal/http/dto"
	"github.com/newsletter-studio/backend/internal/models"
	"github.com/newsletter-studio/backend/internal/repositories"
	"go.uber.org/zap"
)

type AuthHandler struct {
	userRepo *repositories.UserRepo
	cfg      *config.Config
	log      *zap.Logger
}

func NewAuthHandler(userRepo *repositories.UserRepo, cfg *config.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{userRepo: userRepo, cfg: cfg, log: log}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return badRequest(c, "a valid email is required")
	}
	if len(req.Password) < auth.MinPasswordLength {
		return badRequest(c, "password must be at least 8 characters")
	}

	hash, err := auth.HashPassword(req.Password, h.cfg.BcryptCost)
	if err != nil {
		return respondError(c, h.log, err)
	}

	user := &models.User{Email: req.Email, PasswordHash: hash, Name: req.Name}
	if err := h.userRepo.Create(c.Context(), user); err != nil {
		// unique violation on email lands here; don't reveal which
		h.log.Debug("signup insert failed", zap.Error(err))
		return badRequest(c, "email already registered")
	}

	token, err := auth.GenerateJWT(h.cfg.JWTSecret, user.ID, user.Email, h.cfg.JWTExpiration)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{Token: token, User: user})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return badRequest(c, "email and password are required")
	}

	user, err := h.userRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return respondError(c, h.log, apperrors.Unauthorized("invalid credentials"))
		}
		return respondError(c, h.log, err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return respondError(c, h.log, apperrors.Unauthorized("invalid credentials"))
	}

	token, err := auth.GenerateJWT(h.cfg.JWTSecret, user.ID, user.Email, h.cfg.JWTExpiration)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.AuthResponse{Token: token, User: user})
}
