package repository

import (
	"context"

	"github.com/route-sequencing-service/internal/domain"
)

// MatrixProvider - источник матрицы времени и расстояния в пути.
// Один вызов GetMatrix = не больше одного пакетного запроса к внешнему API.
type MatrixProvider interface {
	// GetMatrix возвращает матрицу n x n с индексами в порядке входных локаций.
	// Пары без маршрута помечаются как Unreachable, а не возвращают ошибку.
	GetMatrix(ctx context.Context, locations []domain.Location) (*domain.TravelMatrix, error)

	// Name возвращает имя провайдера (mapbox, ors, geodesic)
	Name() string
}
