package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/truthos/meeting-intelligence/pkg/config"
)

// Client is a minimal client for OpenAI-compatible chat completions. Groq and
// OpenAI share the same wire contract, so one client covers both providers.
type Client struct {
	provider config.Provider
	apiKey   string
	baseURL  string
	model    string
	client   *http.Client
}

// NewClient creates a chat-completions client from the resolved provider
// configuration.
func NewClient(cfg *config.Config) *Client {
	provider, baseURL, apiKey, model := cfg.ResolveProvider()

	timeout := cfg.LLM.Timeout
	if timeout <= 0 {
		timeout = 40 * time.Second
	}

	return &Client{
		provider: provider,
		apiKey:   apiKey,
		baseURL:  baseURL,
		model:    model,
		client:   &http.Client{Timeout: timeout},
	}
}

// Provider returns the resolved provider name.
func (c *Client) Provider() string {
	return string(c.provider)
}

// Model returns the model the client sends completions to.
func (c *Client) Model() string {
	return c.model
}

// Message is one chat message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ResponseFormat constrains the completion output shape
type ResponseFormat struct {
	Type string `json:"type"`
}

// ChatRequest is the shape for chat completion requests
type ChatRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

// ChatResponse is a minimal response shape
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// StatusError reports a non-2xx provider response so callers can separate
// retryable availability failures from permanent request errors.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d response from provider: %s", e.StatusCode, e.Body)
}

// Retryable reports whether the response class is worth retrying: rate limits
// and server-side failures are, other 4xx are not.
func (e *StatusError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// Complete sends a system+user prompt pair requesting JSON-only output and
// returns the assistant content verbatim. Temperature is pinned to 0; the
// caller owns parsing and schema validation.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	reqBody := ChatRequest{
		Model: c.model,
		Messages: []Message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature:    0,
		ResponseFormat: &ResponseFormat{Type: "json_object"},
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var cr ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", err
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("empty response from %s", c.provider)
	}
	return cr.Choices[0].Message.Content, nil
}
