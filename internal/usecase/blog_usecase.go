package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/tourism-backend/internal/domain"
	"github.com/tourism-backend/internal/domain/repository"
	"github.com/tourism-backend/internal/usecase/dto"
)

// BlogUseCase - use case статей блога по городам
type BlogUseCase struct {
	blogRepo repository.BlogRepository
	cityRepo repository.CityRepository
	logger   *zap.Logger
}

// NewBlogUseCase - создание нового BlogUseCase
func NewBlogUseCase(
	blogRepo repository.BlogRepository,
	cityRepo repository.CityRepository,
	logger *zap.Logger,
) *BlogUseCase {
	return &BlogUseCase{
		blogRepo: blogRepo,
		cityRepo: cityRepo,
		logger:   logger,
	}
}

// GetCityBlogs - опубликованные статьи блога для города
func (uc *BlogUseCase) GetCityBlogs(ctx context.Context, cityName string) (*dto.BlogListResponse, error) {
	city, err := uc.cityRepo.GetByName(ctx, cityName)
	if err != nil {
		return nil, err
	}

	blogs, err := uc.blogRepo.GetPublishedByCity(ctx, city.ID)
	if err != nil {
		uc.logger.Error("Failed to get city blogs",
			zap.String("city", cityName),
			zap.Error(err))
		return nil, err
	}

	return &dto.BlogListResponse{
		Blogs: blogs,
		Total: len(blogs),
	}, nil
}

// GetBlog - статья блога по идентификатору
func (uc *BlogUseCase) GetBlog(ctx context.Context, blogID int64) (*domain.Blog, error) {
	blog, err := uc.blogRepo.GetByID(ctx, blogID)
	if err != nil {
		return nil, err
	}
	return blog, nil
}
