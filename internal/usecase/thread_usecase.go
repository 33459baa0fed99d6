package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tourism-backend/internal/domain/repository"
	"github.com/tourism-backend/internal/usecase/dto"
)

// ThreadUseCase - use case просмотра диалогов с AI-гидом
type ThreadUseCase struct {
	threadRepo repository.ThreadRepository
	logger     *zap.Logger
}

// NewThreadUseCase - создание нового ThreadUseCase
func NewThreadUseCase(threadRepo repository.ThreadRepository, logger *zap.Logger) *ThreadUseCase {
	return &ThreadUseCase{
		threadRepo: threadRepo,
		logger:     logger,
	}
}

// GetUserThreads - список диалогов пользователя
func (uc *ThreadUseCase) GetUserThreads(ctx context.Context, userID uuid.UUID) (*dto.ThreadsResponse, error) {
	threads, err := uc.threadRepo.GetByUser(ctx, userID)
	if err != nil {
		uc.logger.Error("Failed to get user threads",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return nil, err
	}

	return &dto.ThreadsResponse{
		Threads: threads,
		Total:   len(threads),
	}, nil
}

// GetThreadMessages - история сообщений диалога, доступ только владельцу
func (uc *ThreadUseCase) GetThreadMessages(ctx context.Context, userID uuid.UUID, threadID string) (*dto.ThreadMessagesResponse, error) {
	thread, err := uc.threadRepo.GetByThreadID(ctx, userID, threadID)
	if err != nil {
		return nil, err
	}

	messages, err := uc.threadRepo.GetMessages(ctx, thread.ID)
	if err != nil {
		uc.logger.Error("Failed to get thread messages",
			zap.String("thread_id", threadID),
			zap.Error(err))
		return nil, err
	}

	return &dto.ThreadMessagesResponse{
		ThreadID: thread.ThreadID,
		Messages: messages,
		Total:    len(messages),
	}, nil
}
