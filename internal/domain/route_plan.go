package domain

import (
	"time"

	"github.com/google/uuid"
)

// RoutePlan - сохраненный результат оптимизации маршрута
type RoutePlan struct {
	ID                   uuid.UUID `json:"id" db:"id"`
	Order                []string  `json:"order" db:"stop_order"`
	LocationCount        int       `json:"location_count" db:"location_count"`
	TotalDurationMinutes int64     `json:"total_duration_minutes" db:"total_duration_minutes"`
	TotalDistanceKm      float64   `json:"total_distance_km" db:"total_distance_km"`
	Degraded             bool      `json:"degraded" db:"degraded"`
	Provider             string    `json:"provider" db:"provider"`
	CreatedAt            time.Time `json:"created_at" db:"created_at"`
}
