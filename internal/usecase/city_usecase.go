package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/tourism-backend/internal/domain/repository"
	"github.com/tourism-backend/internal/usecase/dto"
)

// CityUseCase - use case справочника поддерживаемых городов
type CityUseCase struct {
	cityRepo repository.CityRepository
	logger   *zap.Logger
}

// NewCityUseCase - создание нового CityUseCase
func NewCityUseCase(cityRepo repository.CityRepository, logger *zap.Logger) *CityUseCase {
	return &CityUseCase{
		cityRepo: cityRepo,
		logger:   logger,
	}
}

// GetCities - список всех поддерживаемых городов
func (uc *CityUseCase) GetCities(ctx context.Context) (*dto.CitiesResponse, error) {
	cities, err := uc.cityRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to get cities", zap.Error(err))
		return nil, err
	}

	return &dto.CitiesResponse{
		Cities: cities,
		Total:  len(cities),
	}, nil
}
