package repository

import (
	"context"

	"github.com/tourism-backend/internal/domain"
)

// PlacesRepository - клиент внешнего поискового провайдера мест
type PlacesRepository interface {
	// NearbySearch выполняет один nearby-поиск по ключевому слову вокруг точки
	NearbySearch(ctx context.Context, location domain.GeoPoint, radius int, keyword string) ([]domain.RawPlace, error)

	// GetDetails возвращает детальную карточку места по его идентификатору
	GetDetails(ctx context.Context, placeID string) (*domain.RawPlaceDetail, error)

	// PhotoURL строит URL фотографии по ссылке из выдачи провайдера.
	// URL собирается заново на каждый вызов, без кеширования и подписи.
	PhotoURL(photoReference string) string
}
