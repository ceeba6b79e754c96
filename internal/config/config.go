package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the member QA service.
// Environment variables are automatically parsed from MEMBER_QA_ prefix
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string      `envconfig:"LOG_LEVEL" default:"info"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Message feed Configuration
	FeedURL            string `envconfig:"FEED_URL" default:"https://november7-730026606190.europe-west1.run.app/messages"`
	FeedTimeoutSeconds int    `envconfig:"FEED_TIMEOUT_SECONDS" default:"20"`

	// Local snapshot cache. Empty path disables caching and the service
	// depends on the live feed at startup.
	SnapshotPath string `envconfig:"SNAPSHOT_PATH" default:""`

	// Answer provider Configuration
	LLMProvider          string `envconfig:"LLM_PROVIDER" default:"openai"`
	LLMBaseURL           string `envconfig:"LLM_BASE_URL" default:"https://api.openai.com/v1"`
	LLMModel             string `envconfig:"LLM_MODEL" default:"gpt-4o-mini"`
	LLMAPIKey            string `envconfig:"LLM_API_KEY" default:""`
	AnswerTimeoutSeconds int    `envconfig:"ANSWER_TIMEOUT_SECONDS" default:"30"`

	// Retrieval Configuration
	ContextWindow int `envconfig:"CONTEXT_WINDOW" default:"10"`

	// Health Configuration
	HealthIntervalSeconds     int `envconfig:"HEALTH_INTERVAL_SECONDS" default:"30"`
	HealthProbeTimeoutSeconds int `envconfig:"HEALTH_PROBE_TIMEOUT_SECONDS" default:"5"`
}

// Validate rejects values the service cannot run with.
func (c *Config) Validate() error {
	if c.FeedURL == "" {
		return fmt.Errorf("FEED_URL must not be empty")
	}
	if c.ContextWindow <= 0 {
		return fmt.Errorf("CONTEXT_WINDOW must be positive, got %d", c.ContextWindow)
	}
	allowedProviders := map[string]bool{"openai": true}
	if !allowedProviders[c.LLMProvider] {
		return fmt.Errorf("unsupported LLM_PROVIDER: %s", c.LLMProvider)
	}
	return nil
}

// New creates a new Config by parsing environment variables
// Environment variables should be prefixed with MEMBER_QA_
// Example: MEMBER_QA_FEED_URL, MEMBER_QA_HTTP_PORT
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("MEMBER_QA", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Int("port", cfg.HTTPPort).
		Str("feed_url", cfg.FeedURL).
		Str("snapshot_path", cfg.SnapshotPath).
		Str("llm_provider", cfg.LLMProvider).
		Str("llm_model", cfg.LLMModel).
		Str("llm_api_key_present", func() string {
			if cfg.LLMAPIKey != "" {
				return "true"
			}
			return "false"
		}()).
		Int("context_window", cfg.ContextWindow).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing
func NewForTesting() *Config {
	return &Config{
		Environment: EnvTesting,
		LogLevel:    "debug",

		HTTPPort: 8080,

		FeedURL:            "http://localhost:9100/messages",
		FeedTimeoutSeconds: 5,

		LLMProvider:          "openai",
		LLMBaseURL:           "http://localhost:9101/v1",
		LLMModel:             "gpt-4o-mini",
		AnswerTimeoutSeconds: 5,

		ContextWindow: 10,

		HealthIntervalSeconds:     1,
		HealthProbeTimeoutSeconds: 1,
	}
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// FeedTimeout returns the message feed request timeout.
func (c *Config) FeedTimeout() time.Duration {
	return time.Duration(c.FeedTimeoutSeconds) * time.Second
}

// AnswerTimeout returns the per-question answer generation timeout.
func (c *Config) AnswerTimeout() time.Duration {
	return time.Duration(c.AnswerTimeoutSeconds) * time.Second
}

// HealthInterval returns the background health check cadence.
func (c *Config) HealthInterval() time.Duration {
	return time.Duration(c.HealthIntervalSeconds) * time.Second
}

// HealthProbeTimeout returns the per-probe health check timeout.
func (c *Config) HealthProbeTimeout() time.Duration {
	return time.Duration(c.HealthProbeTimeoutSeconds) * time.Second
}
