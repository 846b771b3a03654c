package llm

import (
	"context"
	"math"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/tell-sh/tell/internal/config"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// GroqProvider talks to Groq's OpenAI-compatible chat endpoint. This is the
// default backend.
type GroqProvider struct {
	client *openai.Client
	model  string
	apiKey string
}

func NewGroqProvider(cfg config.ProviderConfig) *GroqProvider {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = groqBaseURL

	return &GroqProvider{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
		apiKey: cfg.APIKey,
	}
}

func (p *GroqProvider) Name() string {
	return "groq"
}

func (p *GroqProvider) IsAvailable() bool {
	return p.apiKey != ""
}

func (p *GroqProvider) Generate(ctx context.Context, systemPrompt string, messages []Message) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    p.model,
		Messages: chatMessages(systemPrompt, messages),
		// go-openai omits a zero temperature from the request; the smallest
		// positive float pins sampling all the same.
		Temperature: math.SmallestNonzeroFloat32,
		MaxTokens:   500,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// chatMessages maps the neutral message list onto go-openai's request shape,
// with the system prompt first.
func chatMessages(systemPrompt string, messages []Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages)+1)
	out = append(out, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, m := range messages {
		out = append(out, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	return out
}
