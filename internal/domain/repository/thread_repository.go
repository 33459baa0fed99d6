package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/tourism-backend/internal/domain"
)

// ThreadRepository - хранилище тредов AI-гида и их сообщений
type ThreadRepository interface {
	Create(ctx context.Context, thread *domain.Thread) error
	GetByThreadID(ctx context.Context, userID uuid.UUID, threadID string) (*domain.Thread, error)
	GetByUser(ctx context.Context, userID uuid.UUID) ([]domain.Thread, error)

	CreateMessage(ctx context.Context, message *domain.ThreadMessage) error
	GetMessages(ctx context.Context, threadID int64) ([]domain.ThreadMessage, error)
}
