package googleplaces

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tourism-backend/internal/config"
	"github.com/tourism-backend/internal/domain"
	"github.com/tourism-backend/internal/domain/repository"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// statusZeroResults - валидный ответ провайдера без результатов
const statusZeroResults = "ZERO_RESULTS"

type client struct {
	httpClient    *http.Client
	baseURL       string
	photoBaseURL  string
	apiKey        string
	maxPhotoWidth int
	limiter       *rate.Limiter
	logger        *zap.Logger
}

// NewGooglePlacesClient создает новый клиент для Google Places API
func NewGooglePlacesClient(cfg *config.GoogleConfig, logger *zap.Logger) repository.PlacesRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:       cfg.BaseURL,
		photoBaseURL:  cfg.PhotoBaseURL,
		apiKey:        cfg.APIKey,
		maxPhotoWidth: cfg.MaxPhotoWidth,
		limiter:       rate.NewLimiter(rate.Limit(cfg.RequestsPerSec), 1),
		logger:        logger,
	}
}

type nearbySearchResponse struct {
	Results      []domain.RawPlace `json:"results"`
	Status       string            `json:"status"`
	ErrorMessage string            `json:"error_message"`
}

// NearbySearch выполняет nearby-поиск по ключевому слову вокруг точки
func (c *client) NearbySearch(
	ctx context.Context,
	location domain.GeoPoint,
	radius int,
	keyword string,
) ([]domain.RawPlace, error) {
	if keyword == "" {
		return nil, fmt.Errorf("keyword cannot be empty")
	}

	params := url.Values{}
	params.Set("location", location.String())
	params.Set("radius", fmt.Sprintf("%d", radius))
	params.Set("keyword", keyword)
	params.Set("key", c.apiKey)

	requestURL := fmt.Sprintf("%s/nearbysearch/json?%s", c.baseURL, params.Encode())

	c.logger.Debug("Calling Places nearby search",
		zap.String("keyword", keyword),
		zap.Int("radius", radius))

	var resp nearbySearchResponse
	if err := c.doRequest(ctx, requestURL, &resp); err != nil {
		return nil, err
	}

	if resp.Status != "OK" && resp.Status != statusZeroResults {
		c.logger.Error("Places API returned non-OK status",
			zap.String("status", resp.Status),
			zap.String("error_message", resp.ErrorMessage))
		return nil, fmt.Errorf("places API returned status: %s", resp.Status)
	}

	c.logger.Debug("Places nearby search successful",
		zap.String("keyword", keyword),
		zap.Int("results", len(resp.Results)))

	return resp.Results, nil
}

type detailsResponse struct {
	Result       domain.RawPlaceDetail `json:"result"`
	Status       string                `json:"status"`
	ErrorMessage string                `json:"error_message"`
}

// GetDetails возвращает детальную карточку места
func (c *client) GetDetails(ctx context.Context, placeID string) (*domain.RawPlaceDetail, error) {
	if placeID == "" {
		return nil, fmt.Errorf("place_id cannot be empty")
	}

	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("key", c.apiKey)

	requestURL := fmt.Sprintf("%s/details/json?%s", c.baseURL, params.Encode())

	var resp detailsResponse
	if err := c.doRequest(ctx, requestURL, &resp); err != nil {
		return nil, err
	}

	if resp.Status != "OK" {
		c.logger.Error("Places details returned non-OK status",
			zap.String("place_id", placeID),
			zap.String("status", resp.Status),
			zap.String("error_message", resp.ErrorMessage))
		return nil, fmt.Errorf("places API returned status: %s", resp.Status)
	}

	detail := resp.Result
	if detail.PlaceID == "" {
		detail.PlaceID = placeID
	}

	return &detail, nil
}

// PhotoURL строит URL фотографии по ссылке из выдачи провайдера.
// URL собирается заново на каждый вызов - без кеширования и подписи.
func (c *client) PhotoURL(photoReference string) string {
	return fmt.Sprintf("%s?maxwidth=%d&photo_reference=%s&key=%s",
		c.photoBaseURL, c.maxPhotoWidth, photoReference, c.apiKey)
}

func (c *client) doRequest(ctx context.Context, requestURL string, out interface{}) error {
	// Ограничиваем частоту исходящих запросов к провайдеру
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Places API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return fmt.Errorf("places API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
