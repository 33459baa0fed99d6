package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tourism-backend/internal/delivery/http/middleware"
	"github.com/tourism-backend/internal/pkg/errors"
	"github.com/tourism-backend/internal/pkg/utils"
	"github.com/tourism-backend/internal/usecase"
)

// ThreadHandler - обработчик истории диалогов с AI-гидом
type ThreadHandler struct {
	threadUC *usecase.ThreadUseCase
	logger   *zap.Logger
}

// NewThreadHandler - создание нового ThreadHandler
func NewThreadHandler(threadUC *usecase.ThreadUseCase, logger *zap.Logger) *ThreadHandler {
	return &ThreadHandler{
		threadUC: threadUC,
		logger:   logger,
	}
}

// GetThreads godoc
// @Summary Диалоги пользователя с AI-гидом
// @Tags AI
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=dto.ThreadsResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/ai/threads [get]
func (h *ThreadHandler) GetThreads(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.SendError(c, errors.ErrUnauthorized)
	}

	result, err := h.threadUC.GetUserThreads(c.Context(), userID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// GetThreadMessages godoc
// @Summary История сообщений диалога
// @Tags AI
// @Produce json
// @Security BearerAuth
// @Param thread_id path string true "Идентификатор диалога"
// @Success 200 {object} utils.SuccessResponse{data=dto.ThreadMessagesResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/ai/threads/{thread_id}/messages [get]
func (h *ThreadHandler) GetThreadMessages(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.SendError(c, errors.ErrUnauthorized)
	}

	threadID := c.Params("thread_id")

	result, err := h.threadUC.GetThreadMessages(c.Context(), userID, threadID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
