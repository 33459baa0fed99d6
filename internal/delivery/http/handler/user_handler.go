package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tourism-backend/internal/delivery/http/middleware"
	"github.com/tourism-backend/internal/pkg/errors"
	"github.com/tourism-backend/internal/pkg/utils"
	"github.com/tourism-backend/internal/pkg/validator"
	"github.com/tourism-backend/internal/usecase"
	"github.com/tourism-backend/internal/usecase/dto"
)

// UserHandler - обработчик профиля текущего пользователя
type UserHandler struct {
	authUC *usecase.AuthUseCase
	logger *zap.Logger
}

// NewUserHandler - создание нового UserHandler
func NewUserHandler(authUC *usecase.AuthUseCase, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		authUC: authUC,
		logger: logger,
	}
}

// GetMe godoc
// @Summary Профиль текущего пользователя
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=dto.UserProfile}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/users/me [get]
func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.SendError(c, errors.ErrUnauthorized)
	}

	profile, err := h.authUC.GetProfile(c.Context(), userID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, profile, nil)
}

// UpdateMe godoc
// @Summary Обновление профиля текущего пользователя
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Изменяемые поля"
// @Success 200 {object} utils.SuccessResponse{data=dto.UserProfile}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/users/me [patch]
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.SendError(c, errors.ErrUnauthorized)
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	profile, err := h.authUC.UpdateProfile(c.Context(), userID, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, profile, nil)
}
