package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/route-sequencing-service/internal/pkg/utils"
	"github.com/route-sequencing-service/internal/pkg/validator"
	"github.com/route-sequencing-service/internal/usecase/dto"
	"go.uber.org/zap"
)

type GeocodeHandler struct {
	geocodeUC GeocodeService
	logger    *zap.Logger
}

func NewGeocodeHandler(geocodeUC GeocodeService, logger *zap.Logger) *GeocodeHandler {
	return &GeocodeHandler{
		geocodeUC: geocodeUC,
		logger:    logger,
	}
}

// Geocode godoc
// @Summary Прямое геокодирование адреса
// @Description Возвращает координаты адреса установки. Результаты кешируются в Redis.
// @Tags Geocoding
// @Produce json
// @Param q query string true "Адрес (минимум 2 символа)"
// @Success 200 {object} utils.SuccessResponse{data=domain.GeocodeResult}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/geocode [get]
func (h *GeocodeHandler) Geocode(c *fiber.Ctx) error {
	req := dto.GeocodeRequest{Query: c.Query("q")}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.geocodeUC.Geocode(c.Context(), req.Query)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
