package ai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const geminiChatModel = "gemini-2.0-flash"

// Gemini talks to the Google Gemini API. The client is created lazily
// on the first call so an unconfigured provider costs nothing.
type Gemini struct {
	apiKey string
	model  string
	client *genai.Client
}

// NewGemini creates a Gemini provider.
func NewGemini(apiKey string) *Gemini {
	return &Gemini{
		apiKey: apiKey,
		model:  geminiChatModel,
	}
}

// Name returns the backend name.
func (g *Gemini) Name() string {
	return "Gemini"
}

// Configured reports whether an API key is set.
func (g *Gemini) Configured() bool {
	return strings.TrimSpace(g.apiKey) != ""
}

// Chat sends the messages and returns the completion text.
func (g *Gemini) Chat(ctx context.Context, system, user string) (string, error) {
	if !g.Configured() {
		return "", fmt.Errorf("Gemini API key not configured")
	}

	if g.client == nil {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  g.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return "", fmt.Errorf("failed to create Gemini client: %w", err)
		}
		g.client = client
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(user), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		Temperature:       genai.Ptr[float32](defaultTemperature),
		MaxOutputTokens:   defaultMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("no response from Gemini")
	}
	return text, nil
}
