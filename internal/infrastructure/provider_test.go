package infrastructure

import (
	"testing"

	"github.com/route-sequencing-service/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewMatrixProvider(t *testing.T) {
	tests := []struct {
		provider string
		wantName string
		wantErr  bool
	}{
		{provider: "mapbox", wantName: "mapbox"},
		{provider: "ors", wantName: "ors"},
		{provider: "geodesic", wantName: "geodesic"},
		{provider: "google", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			cfg := &config.Config{
				Routing: config.RoutingConfig{Provider: tt.provider, GeodesicSpeedKm: 40, DetourFactor: 1.3},
				Mapbox:  config.MapboxConfig{AccessToken: "pk.test", BaseURL: "http://localhost", DrivingProfile: "mapbox/driving", MaxMatrixPoints: 25, RateLimitPerMin: 60},
				ORS:     config.ORSConfig{APIKey: "key", BaseURL: "http://localhost", Profile: "driving-car"},
			}

			p, err := NewMatrixProvider(cfg, zap.NewNop())

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, p.Name())
		})
	}
}
