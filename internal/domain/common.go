package domain

import "fmt"

// GeoPoint - географическая точка (центр поиска)
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// String возвращает точку в формате "lat,lng", который ожидает провайдер
func (p GeoPoint) String() string {
	return fmt.Sprintf("%f,%f", p.Latitude, p.Longitude)
}
