// Package geodesic - оффлайн-провайдер матрицы по прямой.
// Для локальной разработки и нагрузочных тестов без ключей внешних API.
package geodesic

import (
	"context"
	"math"

	"github.com/route-sequencing-service/internal/config"
	"github.com/route-sequencing-service/internal/domain"
	"github.com/route-sequencing-service/internal/pkg/metrics"
	"github.com/route-sequencing-service/internal/pkg/utils"
)

const providerName = "geodesic"

type Provider struct {
	speedMetersPerSecond float64
	detourFactor         float64
}

// NewProvider - расстояние = гаверсинус * detour factor, время = расстояние / средняя скорость
func NewProvider(cfg *config.RoutingConfig) *Provider {
	speed := cfg.GeodesicSpeedKm
	if speed <= 0 {
		speed = 40
	}
	detour := cfg.DetourFactor
	if detour < 1 {
		detour = 1
	}
	return &Provider{
		speedMetersPerSecond: speed * 1000 / 3600,
		detourFactor:         detour,
	}
}

func (p *Provider) Name() string {
	return providerName
}

func (p *Provider) GetMatrix(ctx context.Context, locations []domain.Location) (*domain.TravelMatrix, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n := len(locations)
	m := domain.NewTravelMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			meters := utils.HaversineMeters(locations[i].Lat, locations[i].Lng, locations[j].Lat, locations[j].Lng) * p.detourFactor
			seconds := meters / p.speedMetersPerSecond
			m.Set(i, j, domain.Reachable(int64(math.Round(seconds)), int64(math.Round(meters))))
		}
	}

	metrics.ProviderCalls.WithLabelValues(providerName, "ok").Inc()
	return m, nil
}
