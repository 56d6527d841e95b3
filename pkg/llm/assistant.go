package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/umputun/recipescope/pkg/config"
	"github.com/umputun/recipescope/pkg/domain"
)

// NoAnswer is returned when the model produced no text
const NoAnswer = "No response generated."

// maxQuestionLen limits question size sent to the model, in runes
const maxQuestionLen = 2000

// Assistant answers free-form cooking questions with an OpenAI-compatible model
type Assistant struct {
	client    *openai.Client
	config    config.LLMConfig
	systemMsg string
}

// NewAssistant creates a new cooking assistant
func NewAssistant(cfg config.LLMConfig) *Assistant {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	// use custom system prompt if provided, otherwise use default
	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}

	return &Assistant{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: systemMsg,
	}
}

const defaultSystemPrompt = `You are a friendly cooking assistant for a recipe recommendation service.
Answer questions about cooking, ingredients, substitutions, meal planning and nutrition.
Keep answers practical and short (under 200 words). Use plain text, no markdown tables.
If the user's dietary preference is given, never suggest ingredients that violate it.
If a question is not about food or cooking, politely say you can only help with cooking.`

// AskRequest is a question with optional user context
type AskRequest struct {
	Question    string
	Preferences *domain.Preferences // stored preference vector, nil if unknown
}

// Ask sends the question to the model and returns the answer text.
// An empty question is rejected with a validation error before any request is made.
func (a *Assistant) Ask(ctx context.Context, req AskRequest) (string, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return "", domain.NewValidationError("question", "must not be empty")
	}
	if len([]rune(question)) > maxQuestionLen {
		return "", domain.NewValidationError("question", fmt.Sprintf("must be at most %d characters", maxQuestionLen))
	}

	if a.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.Timeout)
		defer cancel()
	}

	chatReq := openai.ChatCompletionRequest{
		Model:       a.config.Model,
		Temperature: float32(a.config.Temperature),
		MaxTokens:   a.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: a.systemMsg},
			{Role: openai.ChatMessageRoleUser, Content: a.buildPrompt(question, req.Preferences)},
		},
	}

	resp, err := a.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w: %w", domain.ErrUpstreamUnavailable, err)
	}

	var parts []string
	for _, ch := range resp.Choices {
		if txt := strings.TrimSpace(ch.Message.Content); txt != "" {
			parts = append(parts, txt)
		}
	}
	if len(parts) == 0 {
		return NoAnswer, nil
	}
	return strings.Join(parts, "\n"), nil
}

// buildPrompt prepends known preferences to the question
func (a *Assistant) buildPrompt(question string, prefs *domain.Preferences) string {
	if prefs == nil || prefs.IsEmpty() {
		return question
	}

	var sb strings.Builder
	sb.WriteString("User preferences:\n")
	if prefs.TargetLifestyle != "" {
		sb.WriteString(fmt.Sprintf("- Lifestyle: %s\n", prefs.TargetLifestyle))
	}
	if prefs.Budget != "" {
		sb.WriteString(fmt.Sprintf("- Budget: %s\n", prefs.Budget))
	}
	if prefs.DietaryPreference != "" {
		sb.WriteString(fmt.Sprintf("- Dietary preference: %s\n", prefs.DietaryPreference))
	}
	if prefs.RecipeType != "" {
		sb.WriteString(fmt.Sprintf("- Favorite recipe type: %s\n", prefs.RecipeType))
	}
	if prefs.CookingTime != nil {
		sb.WriteString(fmt.Sprintf("- Available cooking time: %d minutes\n", *prefs.CookingTime))
	}
	sb.WriteString("\nQuestion: ")
	sb.WriteString(question)
	return sb.String()
}
