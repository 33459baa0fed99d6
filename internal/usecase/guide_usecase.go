package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tourism-backend/internal/domain"
	"github.com/tourism-backend/internal/domain/repository"
	"github.com/tourism-backend/internal/pkg/errors"
)

const threadNameMaxLen = 50

// GuideSession - состояние одного WebSocket-диалога с AI-гидом
type GuideSession struct {
	UserID uuid.UUID
	City   *domain.City
	Thread *domain.Thread
}

// GuideUseCase - use case AI-гида: подбор мест по сообщению
// пользователя и генерация ответа ассистента
type GuideUseCase struct {
	feedUC        *FeedUseCase
	cityRepo      repository.CityRepository
	threadRepo    repository.ThreadRepository
	assistantRepo repository.AssistantRepository
	logger        *zap.Logger
}

// NewGuideUseCase - создание нового GuideUseCase
func NewGuideUseCase(
	feedUC *FeedUseCase,
	cityRepo repository.CityRepository,
	threadRepo repository.ThreadRepository,
	assistantRepo repository.AssistantRepository,
	logger *zap.Logger,
) *GuideUseCase {
	return &GuideUseCase{
		feedUC:        feedUC,
		cityRepo:      cityRepo,
		threadRepo:    threadRepo,
		assistantRepo: assistantRepo,
		logger:        logger,
	}
}

// StartSession - открытие диалога: город обязателен, тред опционален
// и подгружается только если принадлежит пользователю
func (uc *GuideUseCase) StartSession(ctx context.Context, userID uuid.UUID, cityName, threadID string) (*GuideSession, error) {
	city, err := uc.cityRepo.GetByName(ctx, cityName)
	if err != nil {
		return nil, err
	}

	session := &GuideSession{
		UserID: userID,
		City:   city,
	}

	if threadID != "" {
		thread, err := uc.threadRepo.GetByThreadID(ctx, userID, threadID)
		if err != nil {
			return nil, err
		}
		session.Thread = thread
	}

	return session, nil
}

// HandleMessage - обработка сообщения пользователя: извлечение
// ключевых слов, подбор кандидатов мест и ответ ассистента.
// Возвращает готовый JSON-массив [{message, photos[]}]
func (uc *GuideUseCase) HandleMessage(ctx context.Context, session *GuideSession, message string) (json.RawMessage, error) {
	if message == "" {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": "message is required",
		})
	}

	if session.Thread == nil {
		thread, err := uc.createThread(ctx, session.UserID, message)
		if err != nil {
			return nil, err
		}
		session.Thread = thread
	}

	keywords, err := uc.assistantRepo.ExtractSearchKeywords(ctx, message)
	if err != nil {
		uc.logger.Error("Failed to extract search keywords", zap.Error(err))
		return nil, errors.ErrAssistantUnavailable
	}

	candidates, err := uc.feedUC.BuildAiCandidateSet(ctx, session.City.Name, session.City.Location(), keywords)
	if err != nil {
		return nil, err
	}

	placesJSON, err := json.Marshal(candidates)
	if err != nil {
		uc.logger.Error("Failed to marshal candidates", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	reply, err := uc.assistantRepo.GenerateGuideReply(ctx, message, placesJSON)
	if err != nil {
		uc.logger.Error("Failed to generate guide reply", zap.Error(err))
		return nil, errors.ErrAssistantUnavailable
	}

	uc.persistExchange(ctx, session.Thread.ID, message, reply)

	return reply, nil
}

// GetThreadHistory - история сообщений треда сессии
func (uc *GuideUseCase) GetThreadHistory(ctx context.Context, session *GuideSession) ([]domain.ThreadMessage, error) {
	if session.Thread == nil {
		return []domain.ThreadMessage{}, nil
	}
	return uc.threadRepo.GetMessages(ctx, session.Thread.ID)
}

func (uc *GuideUseCase) createThread(ctx context.Context, userID uuid.UUID, firstMessage string) (*domain.Thread, error) {
	name, err := uc.assistantRepo.GenerateThreadName(ctx, firstMessage)
	if err != nil {
		// Без названия от ассистента тред получает усеченное сообщение
		uc.logger.Warn("Failed to generate thread name", zap.Error(err))
		name = truncate(firstMessage, threadNameMaxLen)
	}

	thread := &domain.Thread{
		UserID:      userID,
		ThreadName:  name,
		ThreadID:    uuid.New().String(),
		CreatedWhen: time.Now().UTC(),
	}
	if err := uc.threadRepo.Create(ctx, thread); err != nil {
		return nil, err
	}
	return thread, nil
}

// persistExchange - сохранение пары сообщений; ошибка хранения не
// отменяет уже сгенерированный ответ
func (uc *GuideUseCase) persistExchange(ctx context.Context, threadID int64, message string, reply json.RawMessage) {
	now := time.Now().UTC()

	userContent, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		uc.logger.Error("Failed to marshal user message", zap.Error(err))
		return
	}

	userMsg := &domain.ThreadMessage{
		ThreadID:       threadID,
		IsUserMessage:  true,
		MessageContent: userContent,
		SentWhen:       now,
	}
	if err := uc.threadRepo.CreateMessage(ctx, userMsg); err != nil {
		uc.logger.Warn("Failed to persist user message",
			zap.Int64("thread_id", threadID),
			zap.Error(err))
	}

	aiMsg := &domain.ThreadMessage{
		ThreadID:       threadID,
		IsAIMessage:    true,
		MessageContent: json.RawMessage(reply),
		SentWhen:       now,
	}
	if err := uc.threadRepo.CreateMessage(ctx, aiMsg); err != nil {
		uc.logger.Warn("Failed to persist assistant message",
			zap.Int64("thread_id", threadID),
			zap.Error(err))
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
