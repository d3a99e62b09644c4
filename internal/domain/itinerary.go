package domain

// Leg - один переезд между соседними точками тура
type Leg struct {
	FromID          string  `json:"from"`
	ToID            string  `json:"to"`
	DurationMinutes int64   `json:"durationMinutes"`
	DistanceKm      float64 `json:"distanceKm"`
	Unreachable     bool    `json:"unreachable,omitempty"`
}

// Itinerary - производное представление тура: переезды и итоги.
// Итоги считаются как сумма уже округленных переездов, Exact-поля - из сырых секунд и метров.
type Itinerary struct {
	Legs                      []Leg   `json:"legs"`
	TotalDurationMinutes      int64   `json:"totalDurationMinutes"`
	TotalDistanceKm           float64 `json:"totalDistanceKm"`
	TotalDurationMinutesExact int64   `json:"totalDurationMinutesExact"`
	TotalDistanceKmExact      float64 `json:"totalDistanceKmExact"`
	Degraded                  bool    `json:"degraded"`
}
