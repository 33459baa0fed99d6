package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tourism-backend/internal/domain/repository"
	"github.com/tourism-backend/internal/usecase/dto"
)

// AdvertisementUseCase - use case активных рекламных баннеров
type AdvertisementUseCase struct {
	adRepo repository.AdvertisementRepository
	logger *zap.Logger
}

// NewAdvertisementUseCase - создание нового AdvertisementUseCase
func NewAdvertisementUseCase(adRepo repository.AdvertisementRepository, logger *zap.Logger) *AdvertisementUseCase {
	return &AdvertisementUseCase{
		adRepo: adRepo,
		logger: logger,
	}
}

// GetActiveAdvertisements - баннеры в активном окне показа,
// отсортированные по убыванию приоритета
func (uc *AdvertisementUseCase) GetActiveAdvertisements(ctx context.Context) (*dto.AdvertisementsResponse, error) {
	ads, err := uc.adRepo.GetActive(ctx, time.Now().UTC())
	if err != nil {
		uc.logger.Error("Failed to get active advertisements", zap.Error(err))
		return nil, err
	}

	return &dto.AdvertisementsResponse{
		Advertisements: ads,
		Total:          len(ads),
	}, nil
}
