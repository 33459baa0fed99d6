package repository

import (
	"context"

	"github.com/tourism-backend/internal/domain"
)

// CityRepository - хранилище городов
type CityRepository interface {
	GetAll(ctx context.Context) ([]domain.City, error)
	GetByName(ctx context.Context, name string) (*domain.City, error)
}
