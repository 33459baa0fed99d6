package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/tourism-backend/internal/pkg/errors"
	"github.com/tourism-backend/internal/pkg/utils"
	"github.com/tourism-backend/internal/usecase"
)

const userIDKey = "user_id"

// Auth - middleware проверки access токена из заголовка Authorization
func Auth(authUC *usecase.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		userID, err := authUC.ValidateAccessToken(token)
		if err != nil {
			return utils.SendError(c, err)
		}

		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

// UserID - ID пользователя, сохраненный Auth middleware
func UserID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(userIDKey).(uuid.UUID)
	return id, ok
}
