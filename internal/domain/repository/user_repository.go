package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/tourism-backend/internal/domain"
)

// UserRepository - хранилище аккаунтов и кодов восстановления пароля
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *domain.User) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	CreateResetCode(ctx context.Context, code *domain.PasswordResetCode) error
	GetLatestResetCode(ctx context.Context, userID uuid.UUID) (*domain.PasswordResetCode, error)
	DeleteResetCodes(ctx context.Context, userID uuid.UUID) error
}
