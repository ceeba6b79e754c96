// Package openai implements the answer provider on the OpenAI chat
// completions API.
package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/rs82696/Memeber-qa-Service/internal/answer"
	"github.com/rs82696/Memeber-qa-Service/internal/model"
)

// Provider calls the chat completions endpoint with temperature 0 so answers
// stay reproducible for a fixed context.
type Provider struct {
	client *resty.Client
	model  string
}

// New creates a Provider for the given API base URL (e.g.
// https://api.openai.com/v1), key and model.
func New(baseURL, apiKey, model string, timeout time.Duration) *Provider {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(apiKey).
		SetTimeout(timeout)

	return &Provider{client: c, model: model}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Answer implements answer.Provider. Failures are wrapped in
// model.ErrAnswerUnavailable so the boundary can map them to a distinct
// status.
func (p *Provider) Answer(ctx context.Context, question string, items []model.ContextItem) (string, error) {
	reqBody := chatRequest{
		Model:       p.model,
		Temperature: 0,
		Messages: []chatMessage{
			{Role: "system", Content: answer.SystemPrompt},
			{Role: "user", Content: answer.BuildUserPrompt(question, items)},
		},
	}

	resp, err := p.client.R().SetContext(ctx).SetBody(&reqBody).Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("%w: request failed: %v", model.ErrAnswerUnavailable, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", model.ErrAnswerUnavailable, resp.StatusCode(), resp.String())
	}

	var out chatResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", model.ErrAnswerUnavailable, err)
	}
	if out.Error != nil {
		return "", fmt.Errorf("%w: %s", model.ErrAnswerUnavailable, out.Error.Message)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("%w: response has no choices", model.ErrAnswerUnavailable)
	}

	reply := strings.TrimSpace(out.Choices[0].Message.Content)
	if reply == "" {
		reply = answer.InsufficientContext
	}
	return reply, nil
}

// HealthPing implements health.HealthPinger by listing models with the
// configured credentials.
func (p *Provider) HealthPing(ctx context.Context) error {
	resp, err := p.client.R().SetContext(ctx).Get("/models")
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("openai status %d", resp.StatusCode())
	}
	return nil
}
