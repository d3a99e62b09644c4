package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/route-sequencing-service/internal/domain"
)

// RoutePlanRepository - хранилище оптимизированных маршрутов
type RoutePlanRepository interface {
	// Save сохраняет маршрут
	Save(ctx context.Context, plan *domain.RoutePlan) error

	// GetByID возвращает маршрут или nil, если он не найден
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RoutePlan, error)

	// ListRecent возвращает последние limit маршрутов, новые первыми
	ListRecent(ctx context.Context, limit int) ([]*domain.RoutePlan, error)
}
