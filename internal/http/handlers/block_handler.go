package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/newsletter-studio/backend/internal/http/dto"
	"github.com/newsletter-studio/backend/internal/middleware"
	"github.com/newsletter-studio/backend/internal/services"
	"go.uber.org/zap"
)

type BlockHandler struct {
	blockService *services.BlockService
	log          *zap.Logger
}

func NewBlockHandler(blockService *services.BlockService, log *zap.Logger) *BlockHandler {
	return &BlockHandler{blockService: blockService, log: log}
}

func (h *BlockHandler) CreateBlock(c *fiber.Ctx) error {
	issueID, err := uuid.Parse(c.Params("issueId"))
	if err != nil {
		return badRequest(c, "invalid issue id")
	}

	var req dto.CreateBlockRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	block := req.ToModel()
	userID := middleware.GetUserID(c)
	if err := h.blockService.Create(c.Context(), issueID, userID, block); err != nil {
		return respondError(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{Success: true, Data: block})
}

func (h *BlockHandler) ListBlocks(c *fiber.Ctx) error {
	issueID, err := uuid.Parse(c.Params("issueId"))
	if err != nil {
		return badRequest(c, "invalid issue id")
	}

	userID := middleware.GetUserID(c)
	blocks, err := h.blockService.List(c.Context(), issueID, userID)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{Success: true, Data: dto.ListData{Items: blocks, Total: len(blocks)}})
}

func (h *BlockHandler) UpdateBlock(c *fiber.Ctx) error {
	issueID, err := uuid.Parse(c.Params("issueId"))
	if err != nil {
		return badRequest(c, "invalid issue id")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid block id")
	}

	var req dto.UpdateBlockRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	userID := middleware.GetUserID(c)
	block, err := h.blockService.Update(c.Context(), id, issueID, userID, req.ToPatch())
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{Success: true, Data: block})
}

func (h *BlockHandler) DeleteBlock(c *fiber.Ctx) error {
	issueID, err := uuid.Parse(c.Params("issueId"))
	if err != nil {
		return badRequest(c, "invalid issue id")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid block id")
	}

	userID := middleware.GetUserID(c)
	if err := h.blockService.Delete(c.Context(), id, issueID, userID); err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{Success: true})
}

// LinkReport returns every outbound link in the issue's blocks.
func (h *BlockHandler) LinkReport(c *fiber.Ctx) error {
	issueID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid issue id")
	}

	userID := middleware.GetUserID(c)
	report, err := h.blockService.LinkReport(c.Context(), issueID, userID)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{Success: true, Data: dto.ListData{Items: report, Total: len(report)}})
}
