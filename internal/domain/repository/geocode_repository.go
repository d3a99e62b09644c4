package repository

import (
	"context"

	"github.com/route-sequencing-service/internal/domain"
)

// GeocodeRepository определяет прямое геокодирование адресов
type GeocodeRepository interface {
	// Forward возвращает координаты для текстового адреса, nil если ничего не найдено
	Forward(ctx context.Context, query string) (*domain.GeocodeResult, error)
}
