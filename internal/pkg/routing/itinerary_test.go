package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/route-sequencing-service/internal/domain"
)

func TestDurationMinutes(t *testing.T) {
	tests := []struct {
		seconds  int64
		expected int64
	}{
		{0, 0},
		{29, 0},
		{30, 1},
		{125, 2},
		{150, 3},
		{3599, 60},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, DurationMinutes(tt.seconds), "seconds=%d", tt.seconds)
	}
}

func TestDistanceKm(t *testing.T) {
	tests := []struct {
		meters   int64
		expected float64
	}{
		{0, 0},
		{49, 0},
		{50, 0.1},
		{1234, 1.2},
		{1249, 1.2},
		{1250, 1.3},
		{25000, 25},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, DistanceKm(tt.meters), "meters=%d", tt.meters)
	}
}

func TestSummarize_Degenerate(t *testing.T) {
	locations := []domain.Location{{ID: "depot"}}

	empty := Summarize(domain.Tour{}, domain.NewTravelMatrix(0), nil)
	assert.Empty(t, empty.Legs)
	assert.NotNil(t, empty.Legs)
	assert.Zero(t, empty.TotalDurationMinutes)
	assert.Zero(t, empty.TotalDistanceKm)

	single := Summarize(domain.Tour{0}, domain.NewTravelMatrix(1), locations)
	assert.Empty(t, single.Legs)
	assert.Zero(t, single.TotalDurationMinutes)
	assert.Zero(t, single.TotalDistanceKm)
	assert.False(t, single.Degraded)
}

func TestSummarize_TotalsAreSumsOfRoundedLegs(t *testing.T) {
	locations := []domain.Location{{ID: "A"}, {ID: "B"}, {ID: "C"}}
	m := domain.NewTravelMatrix(3)
	m.Set(0, 1, domain.Reachable(600, 4040))
	m.Set(1, 2, domain.Reachable(420, 4040))

	it := Summarize(domain.Tour{0, 1, 2}, m, locations)

	require.Len(t, it.Legs, 2)
	assert.Equal(t, int64(10), it.Legs[0].DurationMinutes)
	assert.Equal(t, int64(7), it.Legs[1].DurationMinutes)
	assert.Equal(t, int64(17), it.TotalDurationMinutes)
	assert.Equal(t, 8.0, it.TotalDistanceKm)
	assert.Equal(t, 8.1, it.TotalDistanceKmExact)
}

func TestSummarize_RoundingErrorAccumulates(t *testing.T) {
	locations := []domain.Location{{ID: "A"}, {ID: "B"}, {ID: "C"}}
	m := domain.NewTravelMatrix(3)
	m.Set(0, 1, domain.Reachable(89, 0))
	m.Set(1, 2, domain.Reachable(89, 0))

	it := Summarize(domain.Tour{0, 1, 2}, m, locations)

	// 89 c -> 1 мин на каждом переезде, но 178 c -> 3 мин
	assert.Equal(t, int64(2), it.TotalDurationMinutes)
	assert.Equal(t, int64(3), it.TotalDurationMinutesExact)
}

func TestSummarize_UnreachableLegMarksDegraded(t *testing.T) {
	locations := []domain.Location{{ID: "A"}, {ID: "B"}, {ID: "C"}}
	m := domain.NewTravelMatrix(3)
	m.Set(0, 1, domain.Reachable(300, 1000))

	it := Summarize(domain.Tour{0, 1, 2}, m, locations)

	require.Len(t, it.Legs, 2)
	assert.False(t, it.Legs[0].Unreachable)
	assert.True(t, it.Legs[1].Unreachable)
	assert.Zero(t, it.Legs[1].DurationMinutes)
	assert.True(t, it.Degraded)
	assert.Equal(t, int64(5), it.TotalDurationMinutes)
}

func TestSequence_EndToEndScenario(t *testing.T) {
	locations := []domain.Location{
		{ID: "A", Lat: 0, Lng: 0},
		{ID: "B", Lat: 0, Lng: 1},
		{ID: "C", Lat: 0, Lng: 2},
	}
	m := domain.NewTravelMatrix(3)
	m.Set(0, 1, domain.Reachable(300, 1000))
	m.Set(0, 2, domain.Reachable(700, 2500))
	m.Set(1, 2, domain.Reachable(300, 1000))
	m.Set(1, 0, domain.Reachable(300, 1000))
	m.Set(2, 0, domain.Reachable(700, 2500))
	m.Set(2, 1, domain.Reachable(300, 1000))

	tour, it := Sequence(m, locations)

	assert.Equal(t, []string{"A", "B", "C"}, OrderIDs(tour, locations))
	assert.Equal(t, []domain.Leg{
		{FromID: "A", ToID: "B", DurationMinutes: 5, DistanceKm: 1.0},
		{FromID: "B", ToID: "C", DurationMinutes: 5, DistanceKm: 1.0},
	}, it.Legs)
	assert.Equal(t, int64(10), it.TotalDurationMinutes)
	assert.Equal(t, 2.0, it.TotalDistanceKm)
	assert.False(t, it.Degraded)
}

func TestSequence_DimensionMismatchPanics(t *testing.T) {
	locations := []domain.Location{{ID: "A"}, {ID: "B"}}

	assert.Panics(t, func() { Sequence(domain.NewTravelMatrix(3), locations) })
	assert.Panics(t, func() { Sequence(nil, locations) })
}
