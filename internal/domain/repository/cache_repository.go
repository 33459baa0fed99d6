package repository

import (
	"context"
	"time"

	"github.com/tourism-backend/internal/domain"
)

// CacheRepository - кеш построенных фидов
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)

	GetFeed(ctx context.Context, cityName string, interests []string) (*domain.Feed, error)
	SetFeed(ctx context.Context, cityName string, interests []string, feed *domain.Feed, ttl time.Duration) error
}
