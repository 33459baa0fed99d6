package feedcache

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tourism-backend/internal/domain/repository"
	"github.com/tourism-backend/internal/usecase"
	"github.com/tourism-backend/internal/worker"
)

// FeedWarmerWorker периодически прогревает кеш фида для всех городов
// по заранее заданному набору интересов
type FeedWarmerWorker struct {
	*worker.BaseWorker
	feedUC    *usecase.FeedUseCase
	cityRepo  repository.CityRepository
	cacheRepo repository.CacheRepository
	interests []string
	interval  time.Duration
	cacheTTL  time.Duration
}

// NewFeedWarmerWorker создает новый FeedWarmerWorker
func NewFeedWarmerWorker(
	feedUC *usecase.FeedUseCase,
	cityRepo repository.CityRepository,
	cacheRepo repository.CacheRepository,
	interests []string,
	interval time.Duration,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *FeedWarmerWorker {
	return &FeedWarmerWorker{
		BaseWorker: worker.NewBaseWorker("feed-cache-warmer", logger),
		feedUC:     feedUC,
		cityRepo:   cityRepo,
		cacheRepo:  cacheRepo,
		interests:  interests,
		interval:   interval,
		cacheTTL:   cacheTTL,
	}
}

// Start запускает воркер
func (w *FeedWarmerWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting FeedWarmerWorker",
		zap.Strings("interests", w.interests),
		zap.Duration("interval", w.interval))

	// Первый прогрев сразу после запуска
	w.warmAll(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case <-ticker.C:
			w.warmAll(ctx)
		}
	}
}

// warmAll строит детерминированный фид для каждого города и кладет его
// в кеш, ошибки по отдельным городам не прерывают цикл
func (w *FeedWarmerWorker) warmAll(ctx context.Context) {
	logger := w.Logger()

	cities, err := w.cityRepo.GetAll(ctx)
	if err != nil {
		logger.Error("Failed to load cities for warmup", zap.Error(err))
		return
	}

	warmed := 0
	for _, city := range cities {
		if w.IsStopped() || ctx.Err() != nil {
			return
		}

		feed, err := w.feedUC.BuildFeed(ctx, city.Name, city.Location(), w.interests, false)
		if err != nil {
			logger.Warn("Failed to build feed for city",
				zap.String("city", city.Name),
				zap.Error(err))
			continue
		}

		if err := w.cacheRepo.SetFeed(ctx, city.Name, w.interests, feed, w.cacheTTL); err != nil {
			logger.Warn("Failed to cache feed for city",
				zap.String("city", city.Name),
				zap.Error(err))
			continue
		}
		warmed++
	}

	logger.Info("Feed cache warmup finished",
		zap.Int("cities", len(cities)),
		zap.Int("warmed", warmed))
}
