package domain

import "github.com/google/uuid"

// Stream names (должны совпадать с планировщиком визитов)
const (
	StreamRouteOptimize = "stream:route:optimize"
	StreamRouteDone     = "stream:route:done"
)

// RouteOptimizeEvent - входящее событие на оптимизацию дневного маршрута монтажника
type RouteOptimizeEvent struct {
	RequestID uuid.UUID  `json:"request_id"`
	Locations []Location `json:"locations"`
}

// RouteDoneEvent - результат оптимизации
type RouteDoneEvent struct {
	RequestID            uuid.UUID  `json:"request_id"`
	PlanID               *uuid.UUID `json:"plan_id,omitempty"`
	Order                []string   `json:"order"`
	TotalDurationMinutes int64      `json:"total_duration_minutes"`
	TotalDistanceKm      float64    `json:"total_distance_km"`
	Legs                 []Leg      `json:"legs"`
	Degraded             bool       `json:"degraded,omitempty"`
	Error                string     `json:"error,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
