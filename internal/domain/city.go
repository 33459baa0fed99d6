package domain

// City - город, доступный в приложении
type City struct {
	ID        int64   `json:"-" db:"id"`
	Name      string  `json:"name" db:"name"`
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// Location возвращает центр города как точку поиска
func (c City) Location() GeoPoint {
	return GeoPoint{Latitude: c.Latitude, Longitude: c.Longitude}
}
