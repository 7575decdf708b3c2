package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/newsletter-studio/backend/internal/http/dto"
	"github.com/newsletter-studio/backend/internal/middleware"
	"github.com/newsletter-studio/backend/internal/services"
	"go.uber.org/zap"
)

type CampaignHandler struct {
	campaignService *services.CampaignService
	log             *zap.Logger
}

func NewCampaignHandler(campaignService *services.CampaignService, log *zap.Logger) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService, log: log}
}

func (h *CampaignHandler) CreateCampaign(c *fiber.Ctx) error {
	var req dto.CreateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	campaign := req.ToModel()
	userID := middleware.GetUserID(c)
	if err := h.campaignService.Create(c.Context(), userID, campaign); err != nil {
		return respondError(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{Success: true, Data: campaign})
}

func (h *CampaignHandler) GetCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid campaign id")
	}

	userID := middleware.GetUserID(c)
	campaign, err := h.campaignService.Get(c.Context(), id, userID)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{Success: true, Data: campaign})
}

func (h *CampaignHandler) ListCampaigns(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	campaigns, err := h.campaignService.List(c.Context(), userID)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{Success: true, Data: dto.ListData{Items: campaigns, Total: len(campaigns)}})
}

func (h *CampaignHandler) UpdateCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid campaign id")
	}

	var req dto.UpdateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	userID := middleware.GetUserID(c)
	campaign, err := h.campaignService.Update(c.Context(), id, userID, req.ToPatch())
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{Success: true, Data: campaign})
}

func (h *CampaignHandler) DeleteCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid campaign id")
	}

	userID := middleware.GetUserID(c)
	if err := h.campaignService.Delete(c.Context(), id, userID); err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{Success: true})
}
