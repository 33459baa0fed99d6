package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tourism-backend/internal/config"
	"github.com/tourism-backend/internal/domain"
	"github.com/tourism-backend/internal/domain/repository"
	"github.com/tourism-backend/internal/pkg/errors"
)

// DetailMode - режим детализации карточки места
type DetailMode string

const (
	// DetailModeFull - полная карточка с отзывами и ссылкой на отзыв
	DetailModeFull DetailMode = "full"
	// DetailModeAiCompact - компактная карточка для кандидатов AI-гида
	DetailModeAiCompact DetailMode = "ai-compact"
	// DetailModeSavedPlace - минимальная карточка для сохраненных мест
	DetailModeSavedPlace DetailMode = "saved-place-compact"
)

const writeReviewURLFormat = "https://search.google.com/local/writereview?placeid=%s"

// FeedUseCase - use case агрегации фида мест из Google Places
type FeedUseCase struct {
	placesRepo repository.PlacesRepository
	cityRepo   repository.CityRepository
	cacheRepo  repository.CacheRepository
	logger     *zap.Logger
	cfg        *config.GoogleConfig
	cacheTTL   time.Duration
}

// NewFeedUseCase - создание нового FeedUseCase
func NewFeedUseCase(
	placesRepo repository.PlacesRepository,
	cityRepo repository.CityRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cfg *config.GoogleConfig,
	cacheTTL time.Duration,
) *FeedUseCase {
	return &FeedUseCase{
		placesRepo: placesRepo,
		cityRepo:   cityRepo,
		cacheRepo:  cacheRepo,
		logger:     logger,
		cfg:        cfg,
		cacheTTL:   cacheTTL,
	}
}

// GetUserFeed - фид для города по имени с кешированием детерминированной основы
func (uc *FeedUseCase) GetUserFeed(ctx context.Context, cityName string, interests []string, randomize bool) (*domain.Feed, error) {
	city, err := uc.cityRepo.GetByName(ctx, cityName)
	if err != nil {
		return nil, err
	}

	// Проверка кеша
	feed, err := uc.cacheRepo.GetFeed(ctx, city.Name, interests)
	if err != nil {
		uc.logger.Warn("Failed to read feed from cache", zap.Error(err))
	}

	if feed == nil {
		feed, err = uc.BuildFeed(ctx, city.Name, city.Location(), interests, false)
		if err != nil {
			return nil, err
		}

		if err := uc.cacheRepo.SetFeed(ctx, city.Name, interests, feed, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache feed", zap.Error(err))
		}
	}

	// Перемешивание только поверх кешируемой основы
	if randomize {
		shuffleFeed(feed)
	}

	return feed, nil
}

// BuildFeed - построение фида: последовательный обход интересов,
// дедупликация мест и разбиение на popular/recommended по рейтингу
func (uc *FeedUseCase) BuildFeed(ctx context.Context, cityName string, location domain.GeoPoint, interests []string, randomize bool) (*domain.Feed, error) {
	if len(interests) == 0 {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": "at least one interest is required",
		})
	}

	feed := &domain.Feed{
		Popular:     []domain.PlaceSummary{},
		Recommended: []domain.PlaceSummary{},
	}
	seen := make(map[string]struct{})

	for _, interest := range interests {
		places, err := uc.placesRepo.NearbySearch(ctx, location, uc.cfg.SearchRadius, interest)
		if err != nil {
			uc.logger.Error("Nearby search failed",
				zap.String("city", cityName),
				zap.String("interest", interest),
				zap.Error(err))
			return nil, errors.ErrUpstreamUnavailable
		}

		for _, place := range places {
			// Места без фотографий в фид не попадают
			if !place.HasPhoto() {
				continue
			}
			// Место помечается первым интересом, который его нашел
			if _, ok := seen[place.PlaceID]; ok {
				continue
			}
			seen[place.PlaceID] = struct{}{}

			summary := domain.PlaceSummary{
				PlaceID:  place.PlaceID,
				Name:     place.Name,
				Tag:      interest,
				CityName: cityName,
				Image:    uc.placesRepo.PhotoURL(place.Photos[0].PhotoReference),
				Rating:   place.Rating,
			}

			if place.Rating.AtLeast(uc.cfg.PopularRating) {
				feed.Popular = append(feed.Popular, summary)
			} else {
				feed.Recommended = append(feed.Recommended, summary)
			}
		}
	}

	if randomize {
		shuffleFeed(feed)
	}

	uc.logger.Debug("Feed built",
		zap.String("city", cityName),
		zap.Int("popular", len(feed.Popular)),
		zap.Int("recommended", len(feed.Recommended)))

	return feed, nil
}

// BuildAiCandidateSet - подбор кандидатов для AI-гида: детерминированный
// отбор place_id по ключевым словам с лимитом, затем параллельное
// обогащение деталями с ограниченным пулом воркеров
func (uc *FeedUseCase) BuildAiCandidateSet(ctx context.Context, cityName string, location domain.GeoPoint, keywords []string) ([]*domain.PlaceDetail, error) {
	if len(keywords) == 0 {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": "at least one keyword is required",
		})
	}

	maxCandidates := uc.cfg.MaxAiCandidates
	seen := make(map[string]struct{}, maxCandidates)
	placeIDs := make([]string, 0, maxCandidates)

	for _, keyword := range keywords {
		places, err := uc.placesRepo.NearbySearch(ctx, location, uc.cfg.SearchRadius, keyword)
		if err != nil {
			uc.logger.Error("Nearby search failed",
				zap.String("city", cityName),
				zap.String("keyword", keyword),
				zap.Error(err))
			return nil, errors.ErrUpstreamUnavailable
		}

		for _, place := range places {
			if !place.HasPhoto() {
				continue
			}
			if _, ok := seen[place.PlaceID]; ok {
				continue
			}
			seen[place.PlaceID] = struct{}{}
			placeIDs = append(placeIDs, place.PlaceID)

			if len(placeIDs) >= maxCandidates {
				break
			}
		}
		if len(placeIDs) >= maxCandidates {
			break
		}
	}

	// Обогащение: ошибка одного места не отменяет остальных,
	// порядок результата определяется порядком завершения
	var (
		mu      sync.Mutex
		details = make([]*domain.PlaceDetail, 0, len(placeIDs))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.cfg.DetailWorkers)

	for _, placeID := range placeIDs {
		placeID := placeID
		g.Go(func() error {
			detail, err := uc.GetPlaceDetail(gctx, placeID, DetailModeAiCompact)
			if err != nil {
				uc.logger.Warn("Skipping candidate with failed detail fetch",
					zap.String("place_id", placeID),
					zap.Error(err))
				return nil
			}

			mu.Lock()
			details = append(details, detail)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return details, nil
}

// GetPlaceDetail - карточка места в запрошенном режиме детализации
func (uc *FeedUseCase) GetPlaceDetail(ctx context.Context, placeID string, mode DetailMode) (*domain.PlaceDetail, error) {
	if placeID == "" {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": "place_id is required",
		})
	}

	raw, err := uc.placesRepo.GetDetails(ctx, placeID)
	if err != nil {
		uc.logger.Error("Failed to fetch place details",
			zap.String("place_id", placeID),
			zap.Error(err))
		return nil, errors.ErrUpstreamUnavailable
	}

	detail := &domain.PlaceDetail{
		PlaceID: raw.PlaceID,
		Name:    raw.Name,
		Address: raw.Address,
		Rating:  raw.Rating,
	}

	if mode == DetailModeSavedPlace {
		if len(raw.Photos) > 0 {
			detail.Image = uc.placesRepo.PhotoURL(raw.Photos[0].PhotoReference)
		}
		return detail, nil
	}

	detail.Phone = raw.Phone
	detail.MapDirectionsURL = raw.URL
	if raw.OpeningHours != nil {
		detail.OpeningHours = raw.OpeningHours.WeekdayText
	}
	for _, photo := range raw.Photos {
		detail.Photos = append(detail.Photos, uc.placesRepo.PhotoURL(photo.PhotoReference))
	}

	if mode == DetailModeFull {
		reviews := usableReviews(raw.Reviews)
		if len(reviews) > 0 {
			detail.Reviews = reviews
			detail.WriteAReviewURL = fmt.Sprintf(writeReviewURLFormat, raw.PlaceID)
		}
	}

	return detail, nil
}

// usableReviews - отбор отзывов с текстом и числовым рейтингом
func usableReviews(raw []domain.RawReview) []domain.PlaceReview {
	reviews := make([]domain.PlaceReview, 0, len(raw))
	for _, r := range raw {
		if r.Text == "" || !r.Rating.Rated {
			continue
		}
		reviews = append(reviews, domain.PlaceReview{
			Author: r.AuthorName,
			Text:   r.Text,
			Rating: r.Rating,
		})
	}
	if len(reviews) == 0 {
		return nil
	}
	return reviews
}

// shuffleFeed - независимое перемешивание каждой секции фида
func shuffleFeed(feed *domain.Feed) {
	rand.Shuffle(len(feed.Popular), func(i, j int) {
		feed.Popular[i], feed.Popular[j] = feed.Popular[j], feed.Popular[i]
	})
	rand.Shuffle(len(feed.Recommended), func(i, j int) {
		feed.Recommended[i], feed.Recommended[j] = feed.Recommended[j], feed.Recommended[i]
	})
}
