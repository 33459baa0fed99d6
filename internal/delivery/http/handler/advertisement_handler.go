package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tourism-backend/internal/pkg/utils"
	"github.com/tourism-backend/internal/usecase"
)

// AdvertisementHandler - обработчик рекламных баннеров
type AdvertisementHandler struct {
	adUC   *usecase.AdvertisementUseCase
	logger *zap.Logger
}

// NewAdvertisementHandler - создание нового AdvertisementHandler
func NewAdvertisementHandler(adUC *usecase.AdvertisementUseCase, logger *zap.Logger) *AdvertisementHandler {
	return &AdvertisementHandler{
		adUC:   adUC,
		logger: logger,
	}
}

// GetActive godoc
// @Summary Активные рекламные баннеры
// @Description Возвращает баннеры в активном окне показа, отсортированные по убыванию приоритета
// @Tags Advertisements
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.AdvertisementsResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/advertisements [get]
func (h *AdvertisementHandler) GetActive(c *fiber.Ctx) error {
	result, err := h.adUC.GetActiveAdvertisements(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
