package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/route-sequencing-service/internal/pkg/utils"
	"go.uber.org/zap"
)

// StatsHandler обрабатывает запросы для статистики
type StatsHandler struct {
	statsUC StatsService
	logger  *zap.Logger
}

// NewStatsHandler создает новый экземпляр StatsHandler
func NewStatsHandler(statsUC StatsService, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetStatistics godoc
// @Summary Get route statistics
// @Description Возвращает агрегированную статистику по построенным маршрутам
// @Tags Statistics
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.RouteStatistics}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/stats [get]
func (h *StatsHandler) GetStatistics(c *fiber.Ctx) error {
	h.logger.Debug("Handling get statistics request")

	stats, err := h.statsUC.GetStatistics(c.Context())
	if err != nil {
		h.logger.Error("Failed to get statistics", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, nil)
}
