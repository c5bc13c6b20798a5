package handler

import (
	"time"

	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/detour"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/pkg/utils"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/usecase"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DetourHandler - detour statistics endpoints
type DetourHandler struct {
	detourUC *usecase.DetourUseCase
	logger   *zap.Logger
}

// NewDetourHandler - creates a new DetourHandler
func NewDetourHandler(detourUC *usecase.DetourUseCase, logger *zap.Logger) *DetourHandler {
	return &DetourHandler{
		detourUC: detourUC,
		logger:   logger,
	}
}

// QueryPairs godoc
// @Summary Preview query pairs
// @Description Lists the pairs of real stops whose direct routes an evaluation with the given cap would query. Waypoints are never part of a pair.
// @Tags Detour
// @Accept json
// @Produce json
// @Param request body dto.DetourRequest true "Stops of the line and the cap"
// @Success 200 {object} utils.SuccessResponse{data=dto.QueryPairsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/detour/pairs [post]
func (h *DetourHandler) QueryPairs(c *fiber.Ctx) error {
	var req dto.DetourRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	cap, err := resolveCap(req.Cap, h.detourUC.DefaultCap())
	if err != nil {
		return utils.SendError(c, err)
	}

	stops := dto.ToStops(req.Stops)
	pairs, err := h.detourUC.QueryPairs(stops, cap)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.QueryPairsResponse{
		Cap:          cap,
		RealStops:    detour.RealStopCount(stops),
		MaxUsefulCap: detour.MaxUsefulCap(stops),
		Pairs:        pairs,
	}, &utils.Meta{Total: len(pairs)})
}

// Evaluate godoc
// @Summary Evaluate detours of a stop sequence
// @Description Routes the line and the direct connection of every query pair and returns the smallest, median, biggest and average relative detour. Pairs that could not be routed are listed in failedPairs.
// @Tags Detour
// @Accept json
// @Produce json
// @Param request body dto.DetourRequest true "Stops of the line and the cap"
// @Success 200 {object} utils.SuccessResponse{data=dto.DetourResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/detour [post]
func (h *DetourHandler) Evaluate(c *fiber.Ctx) error {
	var req dto.DetourRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	cap, err := resolveCap(req.Cap, h.detourUC.DefaultCap())
	if err != nil {
		return utils.SendError(c, err)
	}

	start := time.Now()
	stops := dto.ToStops(req.Stops)
	evaluation, err := h.detourUC.Evaluate(c.UserContext(), stops, cap)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.NewDetourResponse(nil, stops, evaluation), &utils.Meta{
		Total:    len(evaluation.Result.Details),
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000,
	})
}

// EvaluateLine godoc
// @Summary Evaluate detours of a stored line
// @Tags Detour
// @Produce json
// @Param id path string true "Line ID"
// @Param cap query int false "Number of real stops a pair may skip beyond the direct neighbours"
// @Success 200 {object} utils.SuccessResponse{data=dto.DetourResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/lines/{id}/detour [get]
func (h *DetourHandler) EvaluateLine(c *fiber.Ctx) error {
	id, err := parseLineID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	requested, err := capQuery(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	cap, err := resolveCap(requested, h.detourUC.DefaultCap())
	if err != nil {
		return utils.SendError(c, err)
	}

	start := time.Now()
	line, evaluation, err := h.detourUC.EvaluateLine(c.UserContext(), id, cap)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.NewDetourResponse(&line.ID, line.Stops, evaluation), &utils.Meta{
		Total:    len(evaluation.Result.Details),
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000,
	})
}
