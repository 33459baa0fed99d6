package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/tourism-backend/internal/domain"
	"github.com/tourism-backend/internal/domain/repository"
	"github.com/tourism-backend/internal/pkg/errors"
	"go.uber.org/zap"
)

type threadRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewThreadRepository(db *DB) repository.ThreadRepository {
	return &threadRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *threadRepository) Create(ctx context.Context, thread *domain.Thread) error {
	query := `
		INSERT INTO threads (user_id, thread_name, thread_id, created_when)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		thread.UserID, thread.ThreadName, thread.ThreadID, thread.CreatedWhen,
	).Scan(&thread.ID)
	if err != nil {
		r.logger.Error("Failed to create thread", zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *threadRepository) GetByThreadID(ctx context.Context, userID uuid.UUID, threadID string) (*domain.Thread, error) {
	query := `
		SELECT id, user_id, thread_name, thread_id, created_when
		FROM threads
		WHERE user_id = $1 AND thread_id = $2
	`

	var thread domain.Thread
	err := r.db.GetContext(ctx, &thread, query, userID, threadID)
	if err == sql.ErrNoRows {
		return nil, errors.ErrThreadNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get thread", zap.String("thread_id", threadID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &thread, nil
}

func (r *threadRepository) GetByUser(ctx context.Context, userID uuid.UUID) ([]domain.Thread, error) {
	query := `
		SELECT id, user_id, thread_name, thread_id, created_when
		FROM threads
		WHERE user_id = $1
		ORDER BY created_when DESC
	`

	var threads []domain.Thread
	if err := r.db.SelectContext(ctx, &threads, query, userID); err != nil {
		r.logger.Error("Failed to get user threads", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return threads, nil
}

func (r *threadRepository) CreateMessage(ctx context.Context, message *domain.ThreadMessage) error {
	query := `
		INSERT INTO thread_messages (thread_id, is_user_message, is_ai_message, message_content, sent_when)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		message.ThreadID, message.IsUserMessage, message.IsAIMessage,
		message.MessageContent, message.SentWhen,
	).Scan(&message.ID)
	if err != nil {
		r.logger.Error("Failed to create thread message", zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *threadRepository) GetMessages(ctx context.Context, threadID int64) ([]domain.ThreadMessage, error) {
	query := `
		SELECT id, thread_id, is_user_message, is_ai_message, message_content, sent_when
		FROM thread_messages
		WHERE thread_id = $1
		ORDER BY sent_when
	`

	var messages []domain.ThreadMessage
	if err := r.db.SelectContext(ctx, &messages, query, threadID); err != nil {
		r.logger.Error("Failed to get thread messages", zap.Int64("thread_id", threadID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return messages, nil
}
