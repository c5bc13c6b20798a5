package handler

import (
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/pkg/utils"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// StatsHandler - statistics over the stored lines
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetStatistics godoc
// @Summary Line statistics
// @Description Counts of stored lines, real stops and waypoints
// @Tags Stats
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.Statistics}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/stats [get]
func (h *StatsHandler) GetStatistics(c *fiber.Ctx) error {
	stats, cached, err := h.statsUC.GetStatistics(c.UserContext())
	if err != nil {
		h.logger.Error("Failed to get statistics", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, &utils.Meta{Cached: cached})
}
