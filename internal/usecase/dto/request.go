package dto

import "github.com/route-sequencing-service/internal/domain"

// OptimizeRouteRequest - запрос на построение маршрута.
// Первая локация - точка старта (депо). Меньше двух локаций - не ошибка.
type OptimizeRouteRequest struct {
	Locations []LocationInput `json:"locations" validate:"omitempty,max=25,unique=ID,dive"`
}

// LocationInput - точка маршрута в запросе.
// required на координатах не ставим: 0 - валидная широта и долгота.
type LocationInput struct {
	ID  string  `json:"id" validate:"required,max=128"`
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

// ToDomain конвертирует вход в доменные локации с сохранением порядка
func (r OptimizeRouteRequest) ToDomain() []domain.Location {
	locations := make([]domain.Location, len(r.Locations))
	for i, l := range r.Locations {
		locations[i] = domain.Location{ID: l.ID, Lat: l.Lat, Lng: l.Lng}
	}
	return locations
}

// ListRoutePlansRequest - параметры списка сохраненных маршрутов
type ListRoutePlansRequest struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

// GeocodeRequest - запрос на прямое геокодирование
type GeocodeRequest struct {
	Query string `query:"q" validate:"required,min=2,max=256"`
}
