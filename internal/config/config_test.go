package config

import (
	"os"
	"testing"
	"time"
)

func TestConfigLoad_Defaults(t *testing.T) {
	// clear env vars
	_ = os.Unsetenv("MEMBER_QA_FEED_URL")
	_ = os.Unsetenv("MEMBER_QA_LLM_MODEL")
	_ = os.Unsetenv("MEMBER_QA_CONTEXT_WINDOW")

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.FeedURL != "https://november7-730026606190.europe-west1.run.app/messages" {
		t.Fatalf("unexpected default feed url: %s", cfg.FeedURL)
	}
	if cfg.LLMProvider != "openai" || cfg.LLMModel != "gpt-4o-mini" {
		t.Fatalf("unexpected default llm config: %+v", cfg)
	}
	if cfg.ContextWindow != 10 {
		t.Fatalf("unexpected default context window: %d", cfg.ContextWindow)
	}
	if cfg.HTTPPort != 8080 {
		t.Fatalf("unexpected default http port: %d", cfg.HTTPPort)
	}
}

func TestConfigLoad_EnvOverride(t *testing.T) {
	_ = os.Setenv("MEMBER_QA_LLM_MODEL", "test-model")
	_ = os.Setenv("MEMBER_QA_CONTEXT_WINDOW", "3")
	defer func() {
		_ = os.Unsetenv("MEMBER_QA_LLM_MODEL")
		_ = os.Unsetenv("MEMBER_QA_CONTEXT_WINDOW")
	}()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.LLMModel != "test-model" {
		t.Fatalf("llm model env override failed, got %s", cfg.LLMModel)
	}
	if cfg.ContextWindow != 3 {
		t.Fatalf("context window env override failed, got %d", cfg.ContextWindow)
	}
}

func TestConfigLoad_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"empty feed url", "MEMBER_QA_FEED_URL", ""},
		{"zero context window", "MEMBER_QA_CONTEXT_WINDOW", "0"},
		{"unknown provider", "MEMBER_QA_LLM_PROVIDER", "mainframe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_ = os.Setenv(tt.key, tt.value)
			defer func() { _ = os.Unsetenv(tt.key) }()

			if _, err := New(); err == nil {
				t.Fatalf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestConfig_TimeoutHelpers(t *testing.T) {
	cfg := NewForTesting()
	if cfg.FeedTimeout() != 5*time.Second {
		t.Fatalf("unexpected feed timeout: %v", cfg.FeedTimeout())
	}
	if cfg.AnswerTimeout() != 5*time.Second {
		t.Fatalf("unexpected answer timeout: %v", cfg.AnswerTimeout())
	}
	if cfg.HealthInterval() != time.Second {
		t.Fatalf("unexpected health interval: %v", cfg.HealthInterval())
	}
}
