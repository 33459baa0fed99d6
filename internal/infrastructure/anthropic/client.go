package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/tourism-backend/internal/config"
	"github.com/tourism-backend/internal/domain/repository"
	"go.uber.org/zap"
)

const keywordsSystemPrompt = `You are an assistant designed to extract relevant and concise
searchable keywords from a user's message. These keywords will be
used to query a place-search API for location-based results.

Focus on nouns and key descriptors relevant to location searches,
such as types of places, amenities, and specific geographic locations
(e.g., city names). Avoid filler words like "near", "with", "looking for",
"want", etc.

Return only the most useful and specific keywords that best represent
the user's intent. Format your response as a simple, comma-separated list,
with no additional text or explanation.

Example format: coffee shop, Wi-Fi, bookstore, Amsterdam`

const threadNameSystemPrompt = `You are an assistant that generates a concise and catchy
thread name based on the user's message. The thread name
should reflect the main topic or intent of the message by
incorporating relevant keywords or phrases. Focus on
summarizing the essence of the message in a few words.
Return only the generated thread name, without any additional
explanation or formatting.`

const guideReplySystemPrompt = `You are a friendly tourism trip guide. You receive a traveller's
message together with a JSON list of candidate places (name, address,
rating, opening hours, a map directions link and photo URLs).

Compose a recommendation for the traveller. Respond ONLY with a JSON
array, no markdown fences and no extra text, where every element has
this shape:

[{"message": "...", "photos": ["...", "..."]}]

Each "message" describes one recommended place in a warm conversational
tone, mentioning its address, rating and opening hours when known, and
embedding the directions link as a markdown link. "photos" carries the
photo URLs of that place. Recommend only places from the provided list.`

type client struct {
	api       anthropic.Client
	model     string
	maxTokens int
	timeout   time.Duration
	logger    *zap.Logger
}

// NewAssistantClient создает клиент LLM-ассистента на базе Anthropic API
func NewAssistantClient(cfg *config.AnthropicConfig, logger *zap.Logger) repository.AssistantRepository {
	return &client{
		api:       anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.RequestTimeout,
		logger:    logger,
	}
}

// ExtractSearchKeywords выделяет поисковые фразы из сообщения пользователя
func (c *client) ExtractSearchKeywords(ctx context.Context, message string) ([]string, error) {
	text, err := c.complete(ctx, keywordsSystemPrompt, message)
	if err != nil {
		return nil, err
	}

	parts := strings.Split(strings.Trim(text, `"`), ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		if kw := strings.TrimSpace(p); kw != "" {
			keywords = append(keywords, kw)
		}
	}

	if len(keywords) == 0 {
		return nil, fmt.Errorf("assistant returned no keywords")
	}

	c.logger.Debug("Extracted search keywords",
		zap.Strings("keywords", keywords))

	return keywords, nil
}

// GenerateThreadName придумывает название треда по первому сообщению
func (c *client) GenerateThreadName(ctx context.Context, message string) (string, error) {
	text, err := c.complete(ctx, threadNameSystemPrompt, message)
	if err != nil {
		return "", err
	}
	return strings.Trim(text, `"`), nil
}

// GenerateGuideReply составляет ответ гида по кандидатам мест
func (c *client) GenerateGuideReply(ctx context.Context, message string, placesJSON []byte) ([]byte, error) {
	prompt := fmt.Sprintf("Traveller's message:\n%s\n\nCandidate places:\n%s", message, placesJSON)

	text, err := c.complete(ctx, guideReplySystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	reply := []byte(stripFences(text))
	if !json.Valid(reply) {
		c.logger.Error("Assistant returned invalid JSON reply",
			zap.Int("length", len(reply)))
		return nil, fmt.Errorf("assistant returned invalid JSON reply")
	}

	return reply, nil
}

func (c *client) complete(ctx context.Context, system, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()

	resp, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: int64(c.maxTokens),
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		c.logger.Error("Assistant completion failed", zap.Error(err))
		return "", fmt.Errorf("assistant completion failed: %w", err)
	}

	var builder strings.Builder
	for _, block := range resp.Content {
		builder.WriteString(block.Text)
	}

	c.logger.Debug("Assistant completion finished",
		zap.Duration("duration", time.Since(start)),
		zap.Int("response_length", builder.Len()))

	return strings.TrimSpace(builder.String()), nil
}

// stripFences снимает обрамление ```json ... ```, если модель его добавила
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
