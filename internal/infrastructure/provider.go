package infrastructure

import (
	"fmt"

	"github.com/route-sequencing-service/internal/config"
	"github.com/route-sequencing-service/internal/domain/repository"
	"github.com/route-sequencing-service/internal/infrastructure/geodesic"
	"github.com/route-sequencing-service/internal/infrastructure/mapbox"
	"github.com/route-sequencing-service/internal/infrastructure/ors"
	"go.uber.org/zap"
)

// NewMatrixProvider - провайдер матрицы по ROUTING_PROVIDER
func NewMatrixProvider(cfg *config.Config, logger *zap.Logger) (repository.MatrixProvider, error) {
	switch cfg.Routing.Provider {
	case "mapbox":
		return mapbox.NewMapboxClient(&cfg.Mapbox, logger), nil
	case "ors":
		return ors.NewClient(&cfg.ORS, logger), nil
	case "geodesic":
		logger.Warn("Using geodesic estimator, durations are approximate",
			zap.Float64("speed_kmh", cfg.Routing.GeodesicSpeedKm),
			zap.Float64("detour_factor", cfg.Routing.DetourFactor))
		return geodesic.NewProvider(&cfg.Routing), nil
	default:
		return nil, fmt.Errorf("unknown routing provider %q", cfg.Routing.Provider)
	}
}
