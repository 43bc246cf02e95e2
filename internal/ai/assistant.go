package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/THINKER-ONLY/word-learner/internal/words"
)

const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 1000
	requestTimeout     = 30 * time.Second
)

const systemPrompt = "You are a friendly English-learning assistant for Chinese-speaking students. Answer concisely and helpfully, mixing English and Chinese where it aids understanding."

// Assistant builds study prompts around a vocabulary entry and sends
// them to the configured provider. It holds no word-store state; the
// caller passes a snapshot of the entry being studied.
type Assistant struct {
	provider Provider
}

// NewAssistant creates an assistant on top of the given provider.
func NewAssistant(p Provider) *Assistant {
	return &Assistant{provider: p}
}

// Configured reports whether the underlying provider has credentials.
func (a *Assistant) Configured() bool {
	return a.provider.Configured()
}

// ProviderName identifies the backend for status messages.
func (a *Assistant) ProviderName() string {
	return a.provider.Name()
}

// describe renders the entry for prompt interpolation.
func describe(e words.Entry) string {
	s := fmt.Sprintf("'%s' (Chinese meaning: %s", e.Word, e.Translation)
	if e.PartOfSpeech != "" {
		s += ", part of speech: " + e.PartOfSpeech
	}
	return s + ")"
}

func (a *Assistant) ask(ctx context.Context, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	return a.provider.Chat(ctx, systemPrompt, user)
}

// WordExplanation explains the meaning, usage and typical contexts of
// the word.
func (a *Assistant) WordExplanation(ctx context.Context, e words.Entry) (string, error) {
	return a.ask(ctx, fmt.Sprintf(
		"Explain the English word %s in detail: its meaning, usage and common contexts.", describe(e)))
}

// MemoryTips suggests mnemonic techniques for the word.
func (a *Assistant) MemoryTips(ctx context.Context, e words.Entry) (string, error) {
	return a.ask(ctx, fmt.Sprintf(
		"Give effective memory techniques for the English word %s, covering associations, roots and affixes, and pronunciation cues.", describe(e)))
}

// ExampleSentences generates example sentences with translations.
func (a *Assistant) ExampleSentences(ctx context.Context, e words.Entry) (string, error) {
	return a.ask(ctx, fmt.Sprintf(
		"Write 5 practical example sentences for the English word %s, each with a Chinese translation, covering different situations.", describe(e)))
}

// WordTest produces a small self-test for the word.
func (a *Assistant) WordTest(ctx context.Context, e words.Entry) (string, error) {
	return a.ask(ctx, fmt.Sprintf(
		"Create a short quiz for the English word %s with a mix of multiple choice, fill-in-the-blank and sentence-building questions.", describe(e)))
}

// Chat answers a free-form question, optionally in the context of the
// entry currently being studied (zero Entry means no context).
func (a *Assistant) Chat(ctx context.Context, message string, e words.Entry) (string, error) {
	system := systemPrompt
	if e.Word != "" {
		system += fmt.Sprintf(" The student is currently studying the word %s.", describe(e))
	}
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	return a.provider.Chat(ctx, system, message)
}
