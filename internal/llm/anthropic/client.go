// Package anthropic is a minimal client for the Anthropic Messages
// API, covering exactly the single-completion call the relay needs.
package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/mindmate-ai/backend/internal/model/chat"
)

const (
	// DefaultBaseURL is the hosted Anthropic API endpoint.
	DefaultBaseURL = "https://api.anthropic.com"
	// DefaultModel is the completion model used unless overridden.
	DefaultModel = "claude-3-5-sonnet-20241022"
	// DefaultMaxTokens bounds the completion length.
	DefaultMaxTokens = 1024

	apiVersion = "2023-06-01"
)

// Config carries the connection settings for the Messages API.
type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
}

// Client calls the Messages API over HTTP.
type Client struct {
	client    *resty.Client
	model     string
	maxTokens int
}

// NewClient builds a client from the supplied configuration, filling
// in API defaults for any zero-valued field.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-api-key", cfg.APIKey).
		SetHeader("anthropic-version", apiVersion)

	return &Client{client: c, model: model, maxTokens: maxTokens}
}

type messagesRequest struct {
	Model     string      `json:"model"`
	MaxTokens int         `json:"max_tokens"`
	System    string      `json:"system"`
	Messages  []chat.Turn `json:"messages"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type messagesResponse struct {
	ID      string         `json:"id"`
	Content []contentBlock `json:"content"`
}

// Complete sends one transcript under the given system prompt and
// returns the model's reply text plus its conversation identifier.
func (c *Client) Complete(ctx context.Context, system string, turns []chat.Turn) (chat.Reply, error) {
	reqBody := messagesRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System:    system,
		Messages:  turns,
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(&reqBody).
		Post("/v1/messages")
	if err != nil {
		return chat.Reply{}, fmt.Errorf("messages request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return chat.Reply{}, fmt.Errorf("messages status %d: %s", resp.StatusCode(), resp.String())
	}

	var mr messagesResponse
	if err := json.Unmarshal(resp.Body(), &mr); err != nil {
		return chat.Reply{}, fmt.Errorf("decode response: %w", err)
	}
	if len(mr.Content) == 0 {
		return chat.Reply{}, fmt.Errorf("empty completion in response %s", mr.ID)
	}

	return chat.Reply{Message: mr.Content[0].Text, ConversationID: mr.ID}, nil
}
