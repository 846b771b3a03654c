// Package cli wires the session loop: flag handling, one-shot and
// interactive modes, confirmation, and execution.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tell-sh/tell/internal/config"
	"github.com/tell-sh/tell/internal/executor"
	"github.com/tell-sh/tell/internal/history"
	"github.com/tell-sh/tell/internal/llm"
	"github.com/tell-sh/tell/internal/platform"
)

var (
	red    = color.New(color.FgRed, color.Bold)
	yellow = color.New(color.FgYellow)
	bold   = color.New(color.Bold)
)

// ExitError carries a specific process exit status out through cobra.
// One-shot mode propagates the executed command's own exit code this way;
// Err, when set, names the underlying failure for errors.Is checks.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// App holds the per-process session state. Everything is injected at
// construction; there is no ambient global state.
type App struct {
	generate func(ctx context.Context, userPrompt string) (string, error)
	run      func(command, shellPath string) (int, error)
	store    *history.Store
	info     platform.Info
	reader   lineReader
	out      io.Writer
}

func NewRootCmd() *cobra.Command {
	var (
		interactiveFlag bool
		clearFlag       bool
	)

	cmd := &cobra.Command{
		Use:   "tell [prompt]",
		Short: "Convert natural language into a shell command",
		Long: `Tell converts a natural-language task description into a single shell
command, shows it, and executes it only after you confirm.

A short rolling history is kept on disk so follow-up requests can refer
to prior turns ("make it recursive").`,
		Example: `  tell "compress the docs folder"
  tell "find files larger than 100MB"
  tell -i`,
		Args:                  cobra.ArbitraryArgs,
		DisableFlagsInUseLine: true,
		SilenceUsage:          true,
		SilenceErrors:         true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, interactiveFlag, clearFlag)
		},
	}

	cmd.Flags().BoolVarP(&interactiveFlag, "interactive", "i", false, "start interactive mode")
	cmd.Flags().BoolVar(&clearFlag, "clear", false, "clear conversation history and exit")

	return cmd
}

func run(args []string, interactive, clearHistory bool) error {
	store := history.NewStore(history.DefaultPath())

	// --clear runs before platform or credential checks so history can be
	// wiped even on an unconfigured machine.
	if clearHistory {
		if err := store.Clear(); err != nil {
			red.Println("Failed to clear history")
			return &ExitError{Code: 1}
		}
		fmt.Println("History cleared.")
		return nil
	}

	info, err := platform.Detect()
	if err != nil {
		red.Println("This tool currently supports Linux only.")
		return &ExitError{Code: 1}
	}

	cfg, err := config.Load()
	if err != nil {
		red.Println("Failed to load config")
		dim := color.New(color.Faint)
		dim.Printf("(%v)\n", err)
		return &ExitError{Code: 1}
	}

	provider, err := llm.NewProvider(cfg)
	if err != nil {
		red.Printf("Unknown provider: %s\n", cfg.Provider)
		fmt.Println("Available: groq, openai, claude")
		return &ExitError{Code: 1}
	}

	// Fail fast: no point reading a prompt we can never send.
	if err := checkCredential(provider, os.Stdout); err != nil {
		return err
	}

	gen := llm.NewGenerator(provider, store, info)
	app := &App{
		generate: gen.Generate,
		run:      executor.Run,
		store:    store,
		info:     info,
		reader:   newLineReader(os.Stdin, os.Stdout),
		out:      os.Stdout,
	}
	defer app.reader.Close()

	if interactive || len(args) == 0 {
		return app.runInteractive()
	}
	return app.runOneShot(strings.Join(args, " "))
}

// runOneShot performs exactly one generate/confirm/execute cycle. A decline
// exits 0; an executed command's non-zero exit code becomes the process's own.
func (a *App) runOneShot(query string) error {
	command, err := a.generateWithSpinner(query)
	if err != nil {
		a.reportGenerationError(err)
		return &ExitError{Code: 1}
	}

	a.present(command)

	if !a.confirm() {
		yellow.Fprintln(a.out, "Aborted.")
		return nil
	}

	code, err := a.run(command, a.info.ShellPath)
	if err != nil {
		red.Fprintf(a.out, "Shell not found: %v\n", err)
		return &ExitError{Code: 1}
	}
	if code != 0 {
		red.Fprintf(a.out, "Command exited with code %d.\n", code)
		return &ExitError{Code: code}
	}
	return nil
}

func (a *App) generateWithSpinner(query string) (string, error) {
	spinner := newSpinner("Thinking...")
	spinner.Start()
	command, err := a.generate(context.Background(), query)
	spinner.Stop()
	return command, err
}

func (a *App) reportGenerationError(err error) {
	red.Fprintln(a.out, "Generation failed")
	dim := color.New(color.Faint)
	dim.Fprintf(a.out, "(%v)\n", err)
}

// checkCredential verifies the provider has a key before any prompt is
// read. The returned error wraps llm.ErrMissingCredential.
func checkCredential(provider llm.Provider, out io.Writer) error {
	if provider.IsAvailable() {
		return nil
	}

	red.Fprintf(out, "Missing %s API key.\n", provider.Name())
	if envVar := config.EnvVarName(provider.Name()); envVar != "" {
		fmt.Fprintf(out, "Set it with:\n  export %s=<your-key>\n", envVar)
		fmt.Fprintf(out, "or add it to %s\n", config.Path())
	}
	return &ExitError{
		Code: 1,
		Err:  fmt.Errorf("%w for %s", llm.ErrMissingCredential, provider.Name()),
	}
}
