package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"cake-shop/config"
)

// Degraded-mode replies. Both are normal responses, never errors: the chat
// endpoint stays up when the AI side is missing or down.
const (
	AINotConfiguredReply = "Извините, AI пока не настроен (нет GEMINI_API_KEY)."
	AIUnavailableReply   = "Извините, сейчас AI недоступен. Попробуйте позже."
)

var (
	geminiAPIKey  string
	geminiModels  []string
	geminiTimeout time.Duration
)

// InitAI configures the Gemini fallback client.
func InitAI(cfg *config.Config) {
	geminiAPIKey = cfg.GeminiAPIKey
	geminiModels = cfg.GeminiModels
	geminiTimeout = cfg.AITimeout
}

// AskGeminiShort asks the candidate models, in order, for a reply of at most
// maxSentences sentences and returns the first non-empty answer. Attempt
// failures are swallowed: the result is always a usable reply string.
func AskGeminiShort(ctx context.Context, userMessage string, maxSentences int) string {
	if geminiAPIKey == "" {
		return AINotConfiguredReply
	}

	prompt := config.BuildAssistantPrompt(userMessage, maxSentences)

	for _, model := range geminiModels {
		text, err := generateWithModel(ctx, model, prompt)
		if err != nil {
			slog.Debug("Gemini model attempt failed", "model", model, "error", err)
			continue
		}
		return text
	}

	slog.Warn("All Gemini model attempts failed", "models", len(geminiModels))
	return AIUnavailableReply
}

// generateWithModel runs a single model attempt under its own timeout so one
// slow model cannot stall the whole fallback chain.
func generateWithModel(ctx context.Context, model, prompt string) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, geminiTimeout)
	defer cancel()

	llm, err := googleai.New(attemptCtx,
		googleai.WithAPIKey(geminiAPIKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return "", err
	}

	text, err := llms.GenerateFromSinglePrompt(attemptCtx, llm, prompt, llms.WithModel(model))
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.New("empty response from model")
	}
	return text, nil
}
