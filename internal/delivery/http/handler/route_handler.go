package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/route-sequencing-service/internal/pkg/errors"
	"github.com/route-sequencing-service/internal/pkg/utils"
	"github.com/route-sequencing-service/internal/pkg/validator"
	"github.com/route-sequencing-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// RouteHandler - обработчик запросов на построение маршрутов
type RouteHandler struct {
	routeUC RouteService
	logger  *zap.Logger
}

// NewRouteHandler - создание нового RouteHandler
func NewRouteHandler(routeUC RouteService, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		logger:  logger,
	}
}

// OptimizeRoute godoc
// @Summary Построить маршрут обхода точек
// @Description Упорядочивает точки жадным алгоритмом ближайшего соседа по времени в пути. Первая точка - старт (депо). Меньше двух точек - порядок как во входе и нулевые итоги.
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body dto.OptimizeRouteRequest true "Точки маршрута"
// @Success 200 {object} dto.OptimizeRouteResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/routes/optimize [post]
func (h *RouteHandler) OptimizeRoute(c *fiber.Ctx) error {
	var req dto.OptimizeRouteRequest
	// Пустое тело равнозначно пустому списку точек
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"body": "malformed JSON",
			}))
		}
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.routeUC.OptimizeRoute(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	// Ответ без обертки data: формат контракта маршрутизатора
	return c.JSON(resp)
}

// GetRoutePlan godoc
// @Summary Получить сохраненный маршрут
// @Tags Routes
// @Produce json
// @Param id path string true "ID маршрута (uuid)"
// @Success 200 {object} utils.SuccessResponse{data=domain.RoutePlan}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/routes/plans/{id} [get]
func (h *RouteHandler) GetRoutePlan(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"id": "uuid",
		}))
	}

	plan, err := h.routeUC.GetRoutePlan(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, plan, nil)
}

// ListRoutePlans godoc
// @Summary Последние сохраненные маршруты
// @Tags Routes
// @Produce json
// @Param limit query int false "Количество (1-100)" default(20)
// @Success 200 {object} utils.SuccessResponse{data=dto.RoutePlanListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/routes/plans [get]
func (h *RouteHandler) ListRoutePlans(c *fiber.Ctx) error {
	var req dto.ListRoutePlansRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"limit": "number",
		}))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.routeUC.ListRoutePlans(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Plans),
	})
}
