package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

const replPrompt = "tell> "

// runInteractive loops reading task descriptions until exit/quit, EOF, or
// interrupt. Unlike one-shot mode, nothing inside the loop terminates the
// process: a declined command, a failed command, or a failed generation all
// just continue the loop.
func (a *App) runInteractive() error {
	bold.Fprintln(a.out, "Tell interactive mode. Type 'exit' or 'quit' to stop, 'clear' to wipe history.")

	for {
		line, err := a.reader.ReadLine(replPrompt)
		if err != nil {
			fmt.Fprintln(a.out)
			return nil // EOF or interrupt ends the session cleanly
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "exit", "quit":
			return nil
		case "clear":
			if err := a.store.Clear(); err != nil {
				red.Fprintf(a.out, "Failed to clear history: %v\n", err)
				continue
			}
			fmt.Fprintln(a.out, "History cleared.")
			continue
		}

		a.handlePrompt(input)
	}
}

// handlePrompt runs one generate/confirm/execute cycle without ever
// terminating the loop.
func (a *App) handlePrompt(query string) {
	command, err := a.generateWithSpinner(query)
	if err != nil {
		a.reportGenerationError(err)
		return
	}

	a.present(command)

	if !a.confirm() {
		yellow.Fprintln(a.out, "Aborted.")
		return
	}

	code, err := a.run(command, a.info.ShellPath)
	if err != nil {
		red.Fprintf(a.out, "Shell not found: %v\n", err)
		return
	}
	if code != 0 {
		red.Fprintf(a.out, "Command exited with code %d.\n", code)
	}
}

// lineReader abstracts prompt-then-read so the REPL and the confirmation
// prompt share one input source. The readline implementation serves real
// terminals; the scanner implementation serves pipes and tests.
type lineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

func newLineReader(in io.Reader, out io.Writer) lineReader {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if rl, err := readline.NewEx(&readline.Config{
			Prompt:          replPrompt,
			InterruptPrompt: "^C",
			EOFPrompt:       "",
		}); err == nil {
			return &readlineReader{rl: rl}
		}
	}
	return &scannerReader{scanner: bufio.NewScanner(in), out: out}
}

type readlineReader struct {
	rl *readline.Instance
}

func (r *readlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) {
			return "", io.EOF
		}
		return "", err
	}
	return line, nil
}

func (r *readlineReader) Close() error {
	return r.rl.Close()
}

type scannerReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func (r *scannerReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}

func (r *scannerReader) Close() error {
	return nil
}
