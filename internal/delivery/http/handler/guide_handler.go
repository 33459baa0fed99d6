package handler

import (
	"context"
	"encoding/json"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tourism-backend/internal/pkg/errors"
	"github.com/tourism-backend/internal/usecase"
	"github.com/tourism-backend/internal/usecase/dto"
)

const wsUserIDKey = "ws_user_id"

// GuideHandler - WebSocket обработчик диалога с AI-гидом
type GuideHandler struct {
	guideUC *usecase.GuideUseCase
	authUC  *usecase.AuthUseCase
	logger  *zap.Logger
}

// NewGuideHandler - создание нового GuideHandler
func NewGuideHandler(guideUC *usecase.GuideUseCase, authUC *usecase.AuthUseCase, logger *zap.Logger) *GuideHandler {
	return &GuideHandler{
		guideUC: guideUC,
		authUC:  authUC,
		logger:  logger,
	}
}

// Upgrade - проверка WebSocket апгрейда и access токена из query
func (h *GuideHandler) Upgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	token := c.Query("token")
	userID, err := h.authUC.ValidateAccessToken(token)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	c.Locals(wsUserIDKey, userID)
	return c.Next()
}

// Serve - основной цикл диалога: каждое входящее сообщение проходит
// через подбор мест и ассистента, ответ уходит тем же соединением
func (h *GuideHandler) Serve() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		defer conn.Close()

		userID, ok := conn.Locals(wsUserIDKey).(uuid.UUID)
		if !ok {
			h.writeError(conn, errors.ErrUnauthorized)
			return
		}

		cityName := conn.Params("city_name")
		threadID := conn.Query("thread_id")

		ctx := context.Background()

		session, err := h.guideUC.StartSession(ctx, userID, cityName, threadID)
		if err != nil {
			h.writeError(conn, err)
			return
		}

		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					h.logger.Warn("WebSocket read failed", zap.Error(err))
				}
				return
			}

			var req dto.GuideMessageRequest
			if err := json.Unmarshal(data, &req); err != nil {
				// Допускаем и plain text сообщения
				req.Message = string(data)
			}

			reply, err := h.guideUC.HandleMessage(ctx, session, req.Message)
			if err != nil {
				h.writeError(conn, err)
				continue
			}

			if err := conn.WriteMessage(websocket.TextMessage, reply); err != nil {
				h.logger.Warn("WebSocket write failed", zap.Error(err))
				return
			}
		}
	})
}

func (h *GuideHandler) writeError(conn *websocket.Conn, err error) {
	appErr, ok := err.(*errors.AppError)
	if !ok {
		appErr = errors.ErrInternalServer
	}

	payload, merr := json.Marshal(fiber.Map{"error": appErr})
	if merr != nil {
		return
	}
	if werr := conn.WriteMessage(websocket.TextMessage, payload); werr != nil {
		h.logger.Warn("WebSocket write failed", zap.Error(werr))
	}
}
