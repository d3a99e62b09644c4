package routing

import "github.com/route-sequencing-service/internal/domain"

// BuildTour строит тур методом ближайшего соседа, минимизируя длительность каждого шага.
// Недостижимые пары сравниваются как domain.UnreachableCost, поэтому тур всегда полный,
// даже если из текущей точки никуда нельзя доехать.
func BuildTour(m *domain.TravelMatrix) domain.Tour {
	if m == nil {
		panic("routing: nil travel matrix")
	}

	n := m.Size()
	switch n {
	case 0:
		return domain.Tour{}
	case 1:
		return domain.Tour{0}
	}

	visited := make([]bool, n)
	tour := make(domain.Tour, 0, n)

	current := 0
	visited[current] = true
	tour = append(tour, current)

	for step := 1; step < n; step++ {
		next := -1
		var best int64

		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			cost := m.DurationCost(current, j)
			// строгое сравнение: при равенстве остается меньший индекс
			if next == -1 || cost < best {
				next = j
				best = cost
			}
		}

		visited[next] = true
		tour = append(tour, next)
		current = next
	}

	return tour
}
