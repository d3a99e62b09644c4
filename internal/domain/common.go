package domain

import "time"

// RouteStatistics - агрегированная статистика по сохраненным маршрутам
type RouteStatistics struct {
	TotalPlans         int             `json:"total_plans" db:"total_plans"`
	DegradedPlans      int             `json:"degraded_plans" db:"degraded_plans"`
	AvgStops           float64         `json:"avg_stops" db:"avg_stops"`
	AvgDurationMinutes float64         `json:"avg_duration_minutes" db:"avg_duration_minutes"`
	AvgDistanceKm      float64         `json:"avg_distance_km" db:"avg_distance_km"`
	ByProvider         []ProviderUsage `json:"by_provider"`
	LastPlanAt         *time.Time      `json:"last_plan_at,omitempty" db:"last_plan_at"`
}

// ProviderUsage - количество маршрутов по провайдеру матрицы
type ProviderUsage struct {
	Provider string `json:"provider" db:"provider"`
	Plans    int    `json:"plans" db:"plans"`
}
