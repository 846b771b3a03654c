package cli

import (
	"testing"

	"github.com/fatih/color"
)

// With color disabled the highlighter must be a pure passthrough: every
// byte of the command survives, in order.
func TestHighlightPassthroughWithoutColor(t *testing.T) {
	color.NoColor = true

	commands := []string{
		"ls -la",
		"find . -name '*.py' | xargs grep -l 'import os'",
		`echo "hello world" > out.txt`,
		"for f in *.log; do gzip $f; done",
		"du -sh * 2>/dev/null",
		"",
	}
	for _, cmd := range commands {
		for _, shell := range []string{"bash", "zsh", "fish"} {
			if got := Highlight(cmd, shell); got != cmd {
				t.Errorf("Highlight(%q, %q) = %q, want passthrough", cmd, shell, got)
			}
		}
	}
}

func TestHighlightZshDialect(t *testing.T) {
	color.NoColor = true

	// Both dialects preserve content; the zsh keyword set is a superset.
	cmd := "foreach f (*.txt) cat $f"
	if got := Highlight(cmd, "zsh"); got != cmd {
		t.Errorf("zsh highlight = %q, want %q", got, cmd)
	}
	if got := Highlight(cmd, "bash"); got != cmd {
		t.Errorf("bash highlight = %q, want %q", got, cmd)
	}
}

func TestHighlightUnterminatedQuote(t *testing.T) {
	color.NoColor = true

	cmd := `grep "unterminated`
	if got := Highlight(cmd, "bash"); got != cmd {
		t.Errorf("Highlight = %q, want passthrough of unterminated quote", got)
	}
}
