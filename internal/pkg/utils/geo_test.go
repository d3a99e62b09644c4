package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineMeters(t *testing.T) {
	// Amsterdam Centraal -> Utrecht Centraal, около 35 км по прямой
	d := HaversineMeters(52.3791, 4.9003, 52.0894, 5.1100)
	assert.InDelta(t, 35230, d, 300)

	assert.Equal(t, 0.0, HaversineMeters(52.0, 5.0, 52.0, 5.0))

	// один градус долготы на экваторе
	assert.InDelta(t, 111195, HaversineMeters(0, 0, 0, 1), 5)
}
