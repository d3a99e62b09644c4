package repository

import (
	"context"

	"github.com/route-sequencing-service/internal/domain"
)

// StatsRepository интерфейс для работы со статистикой маршрутов
type StatsRepository interface {
	// GetStatistics возвращает агрегированную статистику по сохраненным маршрутам
	GetStatistics(ctx context.Context) (*domain.RouteStatistics, error)
}
