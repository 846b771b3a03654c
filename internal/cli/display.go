package cli

import (
	"fmt"
	"strings"
)

// present renders the candidate command with shell-appropriate highlighting.
func (a *App) present(command string) {
	bold.Fprintln(a.out, "Proposed command:")
	fmt.Fprintf(a.out, "  %s\n", Highlight(command, a.info.ShellName))
}

// confirm asks a yes/no question, defaulting to no on bare enter or any
// input error.
func (a *App) confirm() bool {
	line, err := a.reader.ReadLine("Run this command? [y/N]: ")
	if err != nil {
		return false
	}
	return parseConfirmation(line)
}

func parseConfirmation(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
