package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/tell-sh/tell/internal/executor"
	"github.com/tell-sh/tell/internal/history"
	"github.com/tell-sh/tell/internal/platform"
	"github.com/tell-sh/tell/internal/prompt"
)

// sampleDir is injectable for tests; the default samples the process's
// working directory.
var sampleDir = prompt.SampleWorkingDirectory

// Generator turns a natural-language request into a shell command. Its
// dependencies are injected at construction: the provider must already be
// available (credential checked at startup), and the store is the single
// history instance for the process.
type Generator struct {
	provider Provider
	store    *history.Store
	info     platform.Info
}

func NewGenerator(provider Provider, store *history.Store, info platform.Info) *Generator {
	return &Generator{
		provider: provider,
		store:    store,
		info:     info,
	}
}

// Generate runs one request cycle: sample the directory, build the system
// prompt, replay history, call the model, clean the response, and persist
// the exchange. The exchange is saved as soon as generation succeeds, before
// any confirmation, so a declined command still informs follow-up requests.
func (g *Generator) Generate(ctx context.Context, userPrompt string) (string, error) {
	userPrompt = strings.TrimSpace(userPrompt)

	systemPrompt := prompt.BuildSystemPrompt(g.info.OS, g.info.ShellName, sampleDir())

	turns := g.store.Load()
	messages := make([]Message, 0, len(turns)+1)
	for _, turn := range turns {
		messages = append(messages, Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, Message{Role: RoleUser, Content: userPrompt})

	raw, err := g.provider.Generate(ctx, systemPrompt, messages)
	if err != nil {
		return "", fmt.Errorf("%s API error: %w", g.provider.Name(), err)
	}

	command := executor.Strip(raw)
	if command == "" {
		return "", ErrEmptyGeneration
	}

	turns = append(turns,
		history.Turn{Role: RoleUser, Content: userPrompt},
		history.Turn{Role: RoleAssistant, Content: command},
	)
	// History is best-effort; a write failure must not cost the user their command.
	_ = g.store.Save(turns)

	return command, nil
}
