// Package ai relays prompts to an OpenAI-compatible chat-completion endpoint.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"log/slog"

	"github.com/anassar/mudeer/core/logger"
)

const defaultTimeout = 30 * time.Second

// Config holds the chat-completion endpoint settings.
type Config struct {
	APIKey         string `yaml:"api_key" envconfig:"OPENAI_KEY"`
	BaseURL        string `yaml:"base_url" envconfig:"AI_BASE_URL"`
	Model          string `yaml:"model" envconfig:"AI_MODEL"`
	TimeoutSeconds int    `yaml:"timeout_seconds" envconfig:"AI_TIMEOUT_SECONDS"`
}

// Normalize fills defaults and validates the required fields.
func (c *Config) Normalize() error {
	if c.APIKey == "" {
		return fmt.Errorf("ai.api_key is required")
	}
	if c.BaseURL == "" {
		c.BaseURL = "https://api.openai.com/v1"
	}
	if c.Model == "" {
		c.Model = "gpt-4o-mini"
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("ai.timeout_seconds must be >= 0")
	}
	return nil
}

// Provider answers a single free-text prompt.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Client is the HTTP-backed Provider.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	http    *http.Client
}

// New builds a chat-completion client with a bounded request timeout.
func New(cfg Config) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		http:    &http.Client{Timeout: timeout},
	}
}

// Complete sends the prompt as a single user message and returns the first
// choice's content.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/chat/completions", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion status %d: %s", resp.StatusCode, logger.SanitizeLimit(string(body), 256))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("completion error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}

	logger.AI.Debug("completion done",
		slog.String("event", "ai.complete"),
		slog.String("model", c.model),
		slog.Duration("duration", logger.RoundMS(time.Since(start))),
	)
	return parsed.Choices[0].Message.Content, nil
}
