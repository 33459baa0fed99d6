package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tourism-backend/internal/pkg/utils"
	"github.com/tourism-backend/internal/pkg/validator"
	"github.com/tourism-backend/internal/usecase"
	"github.com/tourism-backend/internal/usecase/dto"
)

// AuthHandler - обработчик регистрации, входа и восстановления пароля
type AuthHandler struct {
	authUC *usecase.AuthUseCase
	logger *zap.Logger
}

// NewAuthHandler - создание нового AuthHandler
func NewAuthHandler(authUC *usecase.AuthUseCase, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		logger: logger,
	}
}

// Register godoc
// @Summary Регистрация пользователя
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Данные регистрации"
// @Success 200 {object} utils.SuccessResponse{data=dto.AuthResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.authUC.Register(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Login godoc
// @Summary Вход по email и паролю
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Учетные данные"
// @Success 200 {object} utils.SuccessResponse{data=dto.AuthResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.authUC.Login(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Refresh godoc
// @Summary Обновление пары токенов
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshRequest true "Refresh токен"
// @Success 200 {object} utils.SuccessResponse{data=dto.TokenPair}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/auth/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	tokens, err := h.authUC.Refresh(c.Context(), req.RefreshToken)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, tokens, nil)
}

// RequestPasswordReset godoc
// @Summary Отправка кода восстановления пароля
// @Description Генерирует шестизначный код и отправляет его на email пользователя. Код действует 10 минут
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.PasswordResetRequest true "Email пользователя"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/auth/password-reset [post]
func (h *AuthHandler) RequestPasswordReset(c *fiber.Ctx) error {
	var req dto.PasswordResetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	if err := h.authUC.RequestPasswordReset(c.Context(), req.Email); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"sent": true}, nil)
}

// VerifyResetCode godoc
// @Summary Проверка кода восстановления
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.VerifyResetCodeRequest true "Email и код"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/auth/password-reset/verify [post]
func (h *AuthHandler) VerifyResetCode(c *fiber.Ctx) error {
	var req dto.VerifyResetCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	if err := h.authUC.VerifyResetCode(c.Context(), req.Email, req.Code); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"valid": true}, nil)
}

// ResetPassword godoc
// @Summary Установка нового пароля по коду
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Email, код и новый пароль"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/auth/password-reset/confirm [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	if err := h.authUC.ResetPassword(c.Context(), req); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"reset": true}, nil)
}
