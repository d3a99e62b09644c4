package domain

// Location - точка маршрута (депо монтажника или адрес установки p1Meter)
// Первая локация в запросе всегда является точкой старта.
type Location struct {
	ID  string  `json:"id"`
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// LocationIDs возвращает идентификаторы в исходном порядке
func LocationIDs(locations []Location) []string {
	ids := make([]string, 0, len(locations))
	for _, l := range locations {
		ids = append(ids, l.ID)
	}
	return ids
}
