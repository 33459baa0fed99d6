package repository

import "context"

// AssistantRepository - клиент LLM-ассистента для AI-гида
type AssistantRepository interface {
	// ExtractSearchKeywords выделяет из сообщения пользователя короткие
	// поисковые фразы для запросов к провайдеру мест
	ExtractSearchKeywords(ctx context.Context, message string) ([]string, error)

	// GenerateThreadName придумывает короткое название нового треда
	// по первому сообщению пользователя
	GenerateThreadName(ctx context.Context, message string) (string, error)

	// GenerateGuideReply составляет ответ гида: на вход сообщение
	// пользователя и JSON с кандидатами мест, на выход JSON-массив
	// [{message, photos[]}]
	GenerateGuideReply(ctx context.Context, message string, placesJSON []byte) ([]byte, error)
}
