package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// NotRated - метка для мест без рейтинга в выдаче провайдера
const NotRated = "Not Rated"

// Rating - рейтинг места из выдачи провайдера.
// Провайдер может вернуть число, строку с числом или вообще ничего;
// всё, что не приводится к числу, считается "Not Rated".
type Rating struct {
	Value float64
	Rated bool
}

// NewRating создает рейтинг с известным значением
func NewRating(value float64) Rating {
	return Rating{Value: value, Rated: true}
}

// AtLeast сообщает, достигает ли рейтинг порога (включительно)
func (r Rating) AtLeast(threshold float64) bool {
	return r.Rated && r.Value >= threshold
}

func (r Rating) MarshalJSON() ([]byte, error) {
	if !r.Rated {
		return json.Marshal(NotRated)
	}
	return json.Marshal(r.Value)
}

func (r *Rating) UnmarshalJSON(data []byte) error {
	// json.Unmarshal(null, *float64-target) ничего не меняет и не возвращает ошибку
	if string(data) == "null" {
		*r = Rating{}
		return nil
	}

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*r = Rating{Value: num, Rated: true}
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(str), 64); err == nil {
			*r = Rating{Value: v, Rated: true}
			return nil
		}
	}

	// объекты, нечисловые строки - считаем место без рейтинга
	*r = Rating{}
	return nil
}

// PlacePhoto - ссылка на фотографию места у провайдера
type PlacePhoto struct {
	PhotoReference string `json:"photo_reference"`
}

// RawPlace - один результат nearby-поиска провайдера
type RawPlace struct {
	PlaceID string       `json:"place_id"`
	Name    string       `json:"name"`
	Rating  Rating       `json:"rating"`
	Photos  []PlacePhoto `json:"photos"`
}

// HasPhoto сообщает, есть ли у места хотя бы одна фотография.
// Места без фотографий не попадают в фид - их нечем отрисовать.
func (p RawPlace) HasPhoto() bool {
	return len(p.Photos) > 0
}

// OpeningHours - часы работы из детальной выдачи провайдера
type OpeningHours struct {
	WeekdayText []string `json:"weekday_text"`
}

// RawReview - отзыв из детальной выдачи провайдера
type RawReview struct {
	AuthorName string `json:"author_name"`
	Text       string `json:"text"`
	Rating     Rating `json:"rating"`
}

// RawPlaceDetail - детальная карточка места у провайдера.
// Все поля опциональны: провайдер заполняет карточку частично.
type RawPlaceDetail struct {
	PlaceID      string        `json:"place_id"`
	Name         string        `json:"name"`
	Address      string        `json:"formatted_address"`
	Rating       Rating        `json:"rating"`
	Phone        string        `json:"formatted_phone_number"`
	Photos       []PlacePhoto  `json:"photos"`
	OpeningHours *OpeningHours `json:"opening_hours"`
	URL          string        `json:"url"`
	Reviews      []RawReview   `json:"reviews"`
}

// PlaceSummary - запись фида: одно место, привязанное к интересу
type PlaceSummary struct {
	PlaceID  string `json:"place_id"`
	Name     string `json:"name"`
	Tag      string `json:"tag"`
	CityName string `json:"city_name"`
	Image    string `json:"image"`
	Rating   Rating `json:"rating"`
}

// Feed - категоризированный фид мест для пользователя
type Feed struct {
	Popular     []PlaceSummary `json:"popular"`
	Recommended []PlaceSummary `json:"recommended"`
}

// PlaceReview - отзыв в детальной карточке места
type PlaceReview struct {
	Author string `json:"author"`
	Text   string `json:"text"`
	Rating Rating `json:"rating"`
}

// PlaceDetail - детальная карточка места.
// Набор заполненных полей зависит от режима выборки:
// photos/opening_hours/map_directions_url/phone в полном режиме,
// единственное image в компактном режиме сохраненных мест.
type PlaceDetail struct {
	PlaceID          string        `json:"place_id"`
	Name             string        `json:"name"`
	Address          string        `json:"address"`
	Rating           Rating        `json:"rating"`
	Phone            string        `json:"phone,omitempty"`
	Photos           []string      `json:"photos,omitempty"`
	OpeningHours     []string      `json:"opening_hours,omitempty"`
	MapDirectionsURL string        `json:"map_directions_url,omitempty"`
	Image            string        `json:"image,omitempty"`
	Reviews          []PlaceReview `json:"reviews,omitempty"`
	WriteAReviewURL  string        `json:"write_a_review_url,omitempty"`
}
