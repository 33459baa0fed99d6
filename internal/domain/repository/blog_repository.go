package repository

import (
	"context"

	"github.com/tourism-backend/internal/domain"
)

// BlogRepository - хранилище статей блога
type BlogRepository interface {
	// GetPublishedByCity возвращает опубликованные статьи о городе
	GetPublishedByCity(ctx context.Context, cityID int64) ([]domain.Blog, error)
	GetByID(ctx context.Context, id int64) (*domain.Blog, error)
}
