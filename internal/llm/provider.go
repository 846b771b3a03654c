// Package llm sends conversations to a remote chat-completion backend and
// turns the response into a single shell command.
package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/tell-sh/tell/internal/config"
)

// Conversation roles. Decoupled from any SDK's own constants so callers
// never import backend-specific types.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

var (
	// ErrMissingCredential means the selected provider has no API key.
	ErrMissingCredential = errors.New("missing API credential")
	// ErrEmptyGeneration means the model returned nothing usable after cleanup.
	ErrEmptyGeneration = errors.New("no command returned by model")
)

// Message is one turn of the conversation sent to the backend.
type Message struct {
	Role    string
	Content string
}

// Provider is the single capability the generator needs: send a chat
// request, get text back. Sampling is pinned to temperature zero in every
// implementation; command generation should be deterministic.
type Provider interface {
	Name() string
	Generate(ctx context.Context, systemPrompt string, messages []Message) (string, error)
	IsAvailable() bool
}

// NewProvider constructs the backend named by the config.
func NewProvider(cfg *config.Config) (Provider, error) {
	switch cfg.Provider {
	case "groq":
		return NewGroqProvider(cfg.Groq), nil
	case "openai":
		return NewOpenAIProvider(cfg.OpenAI), nil
	case "claude":
		return NewClaudeProvider(cfg.Claude), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
}
