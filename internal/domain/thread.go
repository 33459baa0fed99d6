package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Thread - сессия чата пользователя с AI-гидом
type Thread struct {
	ID          int64     `json:"-" db:"id"`
	UserID      uuid.UUID `json:"-" db:"user_id"`
	ThreadName  string    `json:"thread_name" db:"thread_name"`
	ThreadID    string    `json:"thread_id" db:"thread_id"`
	CreatedWhen time.Time `json:"created_when" db:"created_when"`
}

// ThreadMessage - одно сообщение в чате: либо реплика пользователя,
// либо ответ гида (JSON с описаниями мест и фотографиями)
type ThreadMessage struct {
	ID             int64           `json:"-" db:"id"`
	ThreadID       int64           `json:"-" db:"thread_id"`
	IsUserMessage  bool            `json:"is_user_message" db:"is_user_message"`
	IsAIMessage    bool            `json:"is_ai_message" db:"is_ai_message"`
	MessageContent json.RawMessage `json:"message_content" db:"message_content"`
	SentWhen       time.Time       `json:"sent_when" db:"sent_when"`
}
