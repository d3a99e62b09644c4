package dto

import (
	"github.com/google/uuid"
	"github.com/route-sequencing-service/internal/domain"
)

// OptimizeRouteResponse - ответ на построение маршрута.
// Итоги - суммы округленных переездов; Exact-поля посчитаны из сырых значений.
type OptimizeRouteResponse struct {
	Order                     []string     `json:"order"`
	TotalDurationMinutes      int64        `json:"totalDurationMinutes"`
	TotalDistanceKm           float64      `json:"totalDistanceKm"`
	Legs                      []domain.Leg `json:"legs"`
	TotalDurationMinutesExact int64        `json:"totalDurationMinutesExact"`
	TotalDistanceKmExact      float64      `json:"totalDistanceKmExact"`
	Degraded                  bool         `json:"degraded"`
	PlanID                    *uuid.UUID   `json:"planId,omitempty"`
}

// NewOptimizeRouteResponse собирает ответ из порядка и маршрутного листа
func NewOptimizeRouteResponse(order []string, it domain.Itinerary) *OptimizeRouteResponse {
	if order == nil {
		order = []string{}
	}
	legs := it.Legs
	if legs == nil {
		legs = []domain.Leg{}
	}
	return &OptimizeRouteResponse{
		Order:                     order,
		TotalDurationMinutes:      it.TotalDurationMinutes,
		TotalDistanceKm:           it.TotalDistanceKm,
		Legs:                      legs,
		TotalDurationMinutesExact: it.TotalDurationMinutesExact,
		TotalDistanceKmExact:      it.TotalDistanceKmExact,
		Degraded:                  it.Degraded,
	}
}

// RoutePlanListResponse - список сохраненных маршрутов
type RoutePlanListResponse struct {
	Plans []*domain.RoutePlan `json:"plans"`
}
