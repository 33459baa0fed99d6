package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tourism-backend/internal/domain"
	"github.com/tourism-backend/internal/domain/repository"
	"go.uber.org/zap"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("cache exists error: %w", err)
	}

	return val > 0, nil
}

// GetFeed получает фид города из кеша
func (r *cacheRepository) GetFeed(ctx context.Context, cityName string, interests []string) (*domain.Feed, error) {
	data, err := r.Get(ctx, feedKey(cityName, interests))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var feed domain.Feed
	if err := json.Unmarshal(data, &feed); err != nil {
		r.logger.Error("Failed to unmarshal feed from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal feed: %w", err)
	}

	return &feed, nil
}

// SetFeed сохраняет фид города в кеше
func (r *cacheRepository) SetFeed(ctx context.Context, cityName string, interests []string, feed *domain.Feed, ttl time.Duration) error {
	data, err := json.Marshal(feed)
	if err != nil {
		return fmt.Errorf("marshal feed: %w", err)
	}

	return r.Set(ctx, feedKey(cityName, interests), data, ttl)
}

// feedKey строит ключ кеша фида. Порядок интересов сохраняется:
// от него зависят теги мест в построенном фиде
func feedKey(cityName string, interests []string) string {
	normalized := make([]string, len(interests))
	for i, interest := range interests {
		normalized[i] = strings.ToLower(strings.TrimSpace(interest))
	}

	sum := sha1.Sum([]byte(strings.Join(normalized, ",")))
	return fmt.Sprintf("feed:%s:%s", strings.ToLower(cityName), hex.EncodeToString(sum[:]))
}
