package domain

// GeocodeResult - результат прямого геокодирования адреса
type GeocodeResult struct {
	Query     string  `json:"query"`
	PlaceName string  `json:"place_name"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
}
