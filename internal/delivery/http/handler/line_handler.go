package handler

import (
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/domain"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/pkg/utils"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/usecase"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LineHandler - line storage endpoints
type LineHandler struct {
	lineUC *usecase.LineUseCase
	logger *zap.Logger
}

// NewLineHandler - creates a new LineHandler
func NewLineHandler(lineUC *usecase.LineUseCase, logger *zap.Logger) *LineHandler {
	return &LineHandler{
		lineUC: lineUC,
		logger: logger,
	}
}

// Create godoc
// @Summary Create a line
// @Tags Lines
// @Accept json
// @Produce json
// @Param request body dto.LineRequest true "Line"
// @Success 201 {object} utils.SuccessResponse{data=dto.LineResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/lines [post]
func (h *LineHandler) Create(c *fiber.Ctx) error {
	var req dto.LineRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	line, err := h.lineUC.Create(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, dto.NewLineResponse(line))
}

// List godoc
// @Summary List lines
// @Description Returns lines without their stops, newest first
// @Tags Lines
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} utils.SuccessResponse{data=dto.LineListResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/lines [get]
func (h *LineHandler) List(c *fiber.Ctx) error {
	lines, err := h.lineUC.List(c.UserContext(), c.QueryInt("limit", 0), c.QueryInt("offset", 0))
	if err != nil {
		return utils.SendError(c, err)
	}

	resp := toLineList(lines)
	return utils.SendSuccess(c, resp, &utils.Meta{Total: resp.Total})
}

// Batch godoc
// @Summary Get several lines
// @Description Returns the lines, with stops, that exist among the given IDs
// @Tags Lines
// @Accept json
// @Produce json
// @Param request body dto.BatchLinesRequest true "Line IDs"
// @Success 200 {object} utils.SuccessResponse{data=dto.LineListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/lines/batch [post]
func (h *LineHandler) Batch(c *fiber.Ctx) error {
	var req dto.BatchLinesRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	lines, err := h.lineUC.ListByIDs(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	resp := toLineList(lines)
	return utils.SendSuccess(c, resp, &utils.Meta{Total: resp.Total})
}

// Get godoc
// @Summary Get a line
// @Tags Lines
// @Produce json
// @Param id path string true "Line ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.LineResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/lines/{id} [get]
func (h *LineHandler) Get(c *fiber.Ctx) error {
	id, err := parseLineID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	line, err := h.lineUC.Get(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.NewLineResponse(line), nil)
}

// Update godoc
// @Summary Replace a line
// @Description Replaces name, color and the whole stop sequence
// @Tags Lines
// @Accept json
// @Produce json
// @Param id path string true "Line ID"
// @Param request body dto.LineRequest true "Line"
// @Success 200 {object} utils.SuccessResponse{data=dto.LineResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/lines/{id} [put]
func (h *LineHandler) Update(c *fiber.Ctx) error {
	id, err := parseLineID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.LineRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	line, err := h.lineUC.Update(c.UserContext(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.NewLineResponse(line), nil)
}

// Delete godoc
// @Summary Delete a line
// @Tags Lines
// @Param id path string true "Line ID"
// @Success 204
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/lines/{id} [delete]
func (h *LineHandler) Delete(c *fiber.Ctx) error {
	id, err := parseLineID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.lineUC.Delete(c.UserContext(), id); err != nil {
		return utils.SendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func toLineList(lines []*domain.Line) dto.LineListResponse {
	resp := dto.LineListResponse{Lines: make([]dto.LineResponse, 0, len(lines))}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, dto.NewLineResponse(l))
	}
	resp.Total = len(resp.Lines)
	return resp
}
