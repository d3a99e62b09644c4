package domain

// MatrixResponse - ответ Mapbox Matrix API.
// null в durations/distances означает, что маршрут между парой не найден.
type MatrixResponse struct {
	Code         string       `json:"code"`
	Message      string       `json:"message,omitempty"`
	Distances    [][]*float64 `json:"distances"` // в метрах
	Durations    [][]*float64 `json:"durations"` // в секундах
	Destinations []Waypoint   `json:"destinations"`
	Sources      []Waypoint   `json:"sources"`
}

// Waypoint - точка в ответе Mapbox, привязанная к дорожной сети
type Waypoint struct {
	Name     string    `json:"name"`
	Location []float64 `json:"location"` // [lon, lat]
}

// ORSMatrixResponse - ответ OpenRouteService /v2/matrix
type ORSMatrixResponse struct {
	Distances [][]*float64 `json:"distances"`
	Durations [][]*float64 `json:"durations"`
}

// GeocodingResponse - ответ Mapbox Geocoding API (forward)
type GeocodingResponse struct {
	Features []GeocodingFeature `json:"features"`
}

// GeocodingFeature - найденный объект
type GeocodingFeature struct {
	PlaceName string    `json:"place_name"`
	Center    []float64 `json:"center"` // [lon, lat]
}
