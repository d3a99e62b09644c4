package routing

import (
	"math"

	"github.com/route-sequencing-service/internal/domain"
)

// DurationMinutes округляет секунды до целых минут: round(s / 60)
func DurationMinutes(seconds int64) int64 {
	return int64(math.Round(float64(seconds) / 60))
}

// DistanceKm переводит метры в километры с одним знаком: round(m / 100) / 10.
// Двухшаговое округление сохраняет совместимость результатов с прежним сервисом.
func DistanceKm(meters int64) float64 {
	return math.Round(float64(meters)/100) / 10
}

// Summarize строит сводку по туру: переезды между соседними точками и итоги.
// TotalDurationMinutes и TotalDistanceKm - суммы уже округленных переездов.
// Недостижимый переезд попадает в сводку с нулевыми значениями и помечает ее как Degraded.
func Summarize(tour domain.Tour, m *domain.TravelMatrix, locations []domain.Location) domain.Itinerary {
	itinerary := domain.Itinerary{Legs: []domain.Leg{}}
	if len(tour) <= 1 {
		return itinerary
	}

	var rawSeconds, rawMeters int64

	for k := 0; k+1 < len(tour); k++ {
		from, to := tour[k], tour[k+1]
		cell := m.At(from, to)

		leg := domain.Leg{
			FromID: locations[from].ID,
			ToID:   locations[to].ID,
		}

		if cell.IsReachable() {
			leg.DurationMinutes = DurationMinutes(cell.DurationSeconds())
			leg.DistanceKm = DistanceKm(cell.DistanceMeters())
			rawSeconds += cell.DurationSeconds()
			rawMeters += cell.DistanceMeters()
		} else {
			leg.Unreachable = true
			itinerary.Degraded = true
		}

		itinerary.Legs = append(itinerary.Legs, leg)
		itinerary.TotalDurationMinutes += leg.DurationMinutes
		itinerary.TotalDistanceKm += leg.DistanceKm
	}

	itinerary.TotalDurationMinutesExact = DurationMinutes(rawSeconds)
	itinerary.TotalDistanceKmExact = DistanceKm(rawMeters)

	return itinerary
}

// Sequence строит тур и сводку для локаций.
// Матрица другого размера - нарушение контракта вызывающего кода, а не ошибка пользователя: panic.
func Sequence(m *domain.TravelMatrix, locations []domain.Location) (domain.Tour, domain.Itinerary) {
	if err := m.Validate(len(locations)); err != nil {
		panic(err)
	}

	tour := BuildTour(m)
	return tour, Summarize(tour, m, locations)
}

// OrderIDs переводит тур в идентификаторы локаций
func OrderIDs(tour domain.Tour, locations []domain.Location) []string {
	ids := make([]string, 0, len(tour))
	for _, idx := range tour {
		ids = append(ids, locations[idx].ID)
	}
	return ids
}
