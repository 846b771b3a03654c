package llm

import (
	"context"
	"math"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/tell-sh/tell/internal/config"
)

type OpenAIProvider struct {
	client *openai.Client
	model  string
	apiKey string
}

func NewOpenAIProvider(cfg config.ProviderConfig) *OpenAIProvider {
	return &OpenAIProvider{
		client: openai.NewClient(cfg.APIKey),
		model:  cfg.Model,
		apiKey: cfg.APIKey,
	}
}

func (p *OpenAIProvider) Name() string {
	return "openai"
}

func (p *OpenAIProvider) IsAvailable() bool {
	return p.apiKey != ""
}

func (p *OpenAIProvider) Generate(ctx context.Context, systemPrompt string, messages []Message) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Messages:    chatMessages(systemPrompt, messages),
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
