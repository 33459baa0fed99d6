package repository

import (
	"context"
	"time"

	"github.com/tourism-backend/internal/domain"
)

// AdvertisementRepository - хранилище рекламных баннеров
type AdvertisementRepository interface {
	// GetActive возвращает баннеры, активные на момент now,
	// отсортированные по приоритету (по убыванию)
	GetActive(ctx context.Context, now time.Time) ([]domain.Advertisement, error)
}
