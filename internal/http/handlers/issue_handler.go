package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/newsletter-studio/backend/internal/http/dto"
	"github.com/newsletter-studio/backend/internal/middleware"
	"github.com/newsletter-studio/backend/internal/services"
	"go.uber.org/zap"
)

type IssueHandler struct {
	issueService *services.IssueService
	log          *zap.Logger
}

func NewIssueHandler(issueService *services.IssueService, log *zap.Logger) *IssueHandler {
	return &IssueHandler{issueService: issueService, log: log}
}

func (h *IssueHandler) CreateIssue(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("campaignId"))
	if err != nil {
		return badRequest(c, "invalid campaign id")
	}

	var req dto.CreateIssueRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	issue := req.ToModel()
	userID := middleware.GetUserID(c)
	if err := h.issueService.Create(c.Context(), campaignID, userID, issue); err != nil {
		return respondError(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{Success: true, Data: issue})
}

func (h *IssueHandler) GetIssue(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid issue id")
	}

	userID := middleware.GetUserID(c)
	issue, err := h.issueService.Get(c.Context(), id, userID)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{Success: true, Data: issue})
}

func (h *IssueHandler) ListIssues(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("campaignId"))
	if err != nil {
		return badRequest(c, "invalid campaign id")
	}

	userID := middleware.GetUserID(c)
	issues, err := h.issueService.List(c.Context(), campaignID, userID)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{Success: true, Data: dto.ListData{Items: issues, Total: len(issues)}})
}

func (h *IssueHandler) UpdateIssue(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("campaignId"))
	if err != nil {
		return badRequest(c, "invalid campaign id")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid issue id")
	}

	var req dto.UpdateIssueRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	userID := middleware.GetUserID(c)
	issue, err := h.issueService.Update(c.Context(), id, campaignID, userID, req.ToPatch())
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{Success: true, Data: issue})
}

func (h *IssueHandler) DeleteIssue(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("campaignId"))
	if err != nil {
		return badRequest(c, "invalid campaign id")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid issue id")
	}

	userID := middleware.GetUserID(c)
	if err := h.issueService.Delete(c.Context(), id, campaignID, userID); err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{Success: true})
}
