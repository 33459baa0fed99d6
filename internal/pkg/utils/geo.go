package utils

// ValidateCoordinates проверяет, что координаты лежат в допустимых пределах
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
