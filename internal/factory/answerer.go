package factory

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rs82696/Memeber-qa-Service/internal/answer"
	"github.com/rs82696/Memeber-qa-Service/internal/answer/openai"
	"github.com/rs82696/Memeber-qa-Service/internal/config"
)

// NewAnswerProvider creates the answer provider based on config.
func NewAnswerProvider(cfg *config.Config, log zerolog.Logger) (answer.Provider, error) {
	switch cfg.LLMProvider {
	case "openai":
		if cfg.LLMAPIKey == "" {
			// OpenAI-compatible local gateways accept keyless requests
			log.Warn().Str("base_url", cfg.LLMBaseURL).Msg("no LLM API key configured")
		}
		return openai.New(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.AnswerTimeout()), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.LLMProvider)
	}
}
