package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
)

// Provider is a chat-completion backend. Implementations send one
// system-primed exchange and return the generated text.
type Provider interface {
	// Name identifies the backend for status messages.
	Name() string
	// Configured reports whether the backend has credentials.
	Configured() bool
	// Chat sends a system and user message and returns the reply.
	Chat(ctx context.Context, system, user string) (string, error)
}

// DeepSeekBaseURL is the OpenAI-compatible endpoint of the DeepSeek API.
const DeepSeekBaseURL = "https://api.deepseek.com/v1"

const deepSeekChatModel = "deepseek-chat"

// DeepSeek talks to the DeepSeek chat-completion API through the
// OpenAI-compatible client. Calls pass through a circuit breaker so a
// flapping endpoint fails fast instead of stalling the assistant.
type DeepSeek struct {
	apiKey  string
	model   string
	client  *openai.Client
	breaker *gobreaker.CircuitBreaker
}

// NewDeepSeek creates a DeepSeek provider. An empty baseURL selects the
// public DeepSeek endpoint.
func NewDeepSeek(apiKey, baseURL string) *DeepSeek {
	if baseURL == "" {
		baseURL = DeepSeekBaseURL
	}
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL

	return &DeepSeek{
		apiKey: apiKey,
		model:  deepSeekChatModel,
		client: openai.NewClientWithConfig(cfg),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name: "deepseek-chat",
		}),
	}
}

// Name returns the backend name.
func (d *DeepSeek) Name() string {
	return "DeepSeek"
}

// Configured reports whether an API key is set.
func (d *DeepSeek) Configured() bool {
	return strings.TrimSpace(d.apiKey) != ""
}

// Chat sends the messages and returns the completion text.
func (d *DeepSeek) Chat(ctx context.Context, system, user string) (string, error) {
	if !d.Configured() {
		return "", fmt.Errorf("DeepSeek API key not configured")
	}

	req := openai.ChatCompletionRequest{
		Model: d.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: system,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: user,
			},
		},
		Temperature: defaultTemperature,
		MaxTokens:   defaultMaxTokens,
	}

	result, err := d.breaker.Execute(func() (interface{}, error) {
		return d.client.CreateChatCompletion(ctx, req)
	})
	if err != nil {
		return "", fmt.Errorf("DeepSeek API error: %w", err)
	}

	resp := result.(openai.ChatCompletionResponse)
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no response from DeepSeek")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
