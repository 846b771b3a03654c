package llm

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/tell-sh/tell/internal/config"
)

type ClaudeProvider struct {
	client *anthropic.Client
	model  string
	apiKey string
}

func NewClaudeProvider(cfg config.ProviderConfig) *ClaudeProvider {
	return &ClaudeProvider{
		client: anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:  cfg.Model,
		apiKey: cfg.APIKey,
	}
}

func (p *ClaudeProvider) Name() string {
	return "claude"
}

func (p *ClaudeProvider) IsAvailable() bool {
	return p.apiKey != ""
}

func (p *ClaudeProvider) Generate(ctx context.Context, systemPrompt string, messages []Message) (string, error) {
	params := make([]anthropic.MessageParam, 0, len(messages))
	for _, m := range messages {
		block := anthropic.NewTextBlock(m.Content)
		if m.Role == RoleAssistant {
			params = append(params, anthropic.NewAssistantMessage(block))
		} else {
			params = append(params, anthropic.NewUserMessage(block))
		}
	}

	message, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.F(p.model),
		MaxTokens:   anthropic.F(int64(500)),
		Temperature: anthropic.F(0.0),
		System: anthropic.F([]anthropic.TextBlockParam{
			anthropic.NewTextBlock(systemPrompt),
		}),
		Messages: anthropic.F(params),
	})
	if err != nil {
		return "", err
	}

	if len(message.Content) == 0 {
		return "", nil
	}

	var result strings.Builder
	for _, block := range message.Content {
		if block.Type == anthropic.ContentBlockTypeText {
			result.WriteString(block.Text)
		}
	}
	return strings.TrimSpace(result.String()), nil
}
