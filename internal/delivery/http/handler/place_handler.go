package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tourism-backend/internal/pkg/utils"
	"github.com/tourism-backend/internal/pkg/validator"
	"github.com/tourism-backend/internal/usecase"
	"github.com/tourism-backend/internal/usecase/dto"
)

// PlaceHandler - обработчик фида мест и карточек мест
type PlaceHandler struct {
	feedUC *usecase.FeedUseCase
	cityUC *usecase.CityUseCase
	logger *zap.Logger
}

// NewPlaceHandler - создание нового PlaceHandler
func NewPlaceHandler(feedUC *usecase.FeedUseCase, cityUC *usecase.CityUseCase, logger *zap.Logger) *PlaceHandler {
	return &PlaceHandler{
		feedUC: feedUC,
		cityUC: cityUC,
		logger: logger,
	}
}

// GetCities godoc
// @Summary Список поддерживаемых городов
// @Description Возвращает все города, для которых доступен фид мест
// @Tags Places
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.CitiesResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/places/cities [get]
func (h *PlaceHandler) GetCities(c *fiber.Ctx) error {
	result, err := h.cityUC.GetCities(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// GetFeed godoc
// @Summary Фид мест по интересам
// @Description Строит фид мест города по списку интересов: секция popular для высоко оцененных мест, recommended для остальных
// @Tags Places
// @Produce json
// @Param city_name query string true "Название города"
// @Param interests query string true "Интересы через запятую, например museum,restaurant"
// @Param randomize query bool false "Перемешивать секции фида" default(true)
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=domain.Feed}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/places/feed [get]
func (h *PlaceHandler) GetFeed(c *fiber.Ctx) error {
	req := dto.FeedRequest{
		CityName:  c.Query("city_name"),
		Interests: splitCSV(c.Query("interests")),
		Randomize: c.QueryBool("randomize", true),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	feed, err := h.feedUC.GetUserFeed(c.Context(), req.CityName, req.Interests, req.Randomize)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, feed, &utils.Meta{
		Total: len(feed.Popular) + len(feed.Recommended),
	})
}

// GetPlaceDetail godoc
// @Summary Карточка места
// @Description Возвращает детали места по place_id в одном из режимов: full, ai-compact, saved-place-compact
// @Tags Places
// @Produce json
// @Param place_id path string true "Идентификатор места Google Places"
// @Param mode query string false "Режим детализации" default(full)
// @Success 200 {object} utils.SuccessResponse{data=domain.PlaceDetail}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/places/{place_id} [get]
func (h *PlaceHandler) GetPlaceDetail(c *fiber.Ctx) error {
	placeID := c.Params("place_id")

	mode := usecase.DetailMode(c.Query("mode", string(usecase.DetailModeFull)))
	switch mode {
	case usecase.DetailModeFull, usecase.DetailModeAiCompact, usecase.DetailModeSavedPlace:
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Invalid detail mode"})
	}

	detail, err := h.feedUC.GetPlaceDetail(c.Context(), placeID, mode)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, detail, nil)
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
