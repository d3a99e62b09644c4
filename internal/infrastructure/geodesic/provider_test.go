package geodesic

import (
	"context"
	"testing"

	"github.com/route-sequencing-service/internal/config"
	"github.com/route-sequencing-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_GetMatrix(t *testing.T) {
	p := NewProvider(&config.RoutingConfig{GeodesicSpeedKm: 36, DetourFactor: 1})

	locations := []domain.Location{
		{ID: "a", Lat: 0, Lng: 0},
		{ID: "b", Lat: 0, Lng: 1},
		{ID: "c", Lat: 1, Lng: 0},
	}

	m, err := p.GetMatrix(context.Background(), locations)
	require.NoError(t, err)
	require.Equal(t, 3, m.Size())

	ab := m.At(0, 1)
	require.True(t, ab.IsReachable())
	assert.InDelta(t, 111195, ab.DistanceMeters(), 5)
	// 36 км/ч = 10 м/с
	assert.InDelta(t, 11120, ab.DurationSeconds(), 2)

	assert.Equal(t, m.At(0, 1), m.At(1, 0), "straight-line matrix is symmetric")
	assert.Equal(t, domain.Reachable(0, 0), m.At(2, 2))
}

func TestProvider_DetourFactor(t *testing.T) {
	locations := []domain.Location{{ID: "a", Lat: 52.0, Lng: 5.0}, {ID: "b", Lat: 52.1, Lng: 5.1}}

	straight, err := NewProvider(&config.RoutingConfig{GeodesicSpeedKm: 40, DetourFactor: 1}).GetMatrix(context.Background(), locations)
	require.NoError(t, err)
	detoured, err := NewProvider(&config.RoutingConfig{GeodesicSpeedKm: 40, DetourFactor: 1.5}).GetMatrix(context.Background(), locations)
	require.NoError(t, err)

	assert.InDelta(t, float64(straight.At(0, 1).DistanceMeters())*1.5, detoured.At(0, 1).DistanceMeters(), 1)
}

func TestProvider_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewProvider(&config.RoutingConfig{}).GetMatrix(ctx, []domain.Location{{ID: "a"}, {ID: "b"}})
	assert.ErrorIs(t, err, context.Canceled)
}
