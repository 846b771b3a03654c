package executor

import "testing"

func TestStrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain command unchanged", "ls -la", "ls -la"},
		{"fenced block", "```\necho hi\n```", "echo hi"},
		{"fenced block with language", "```bash\necho hi\n```", "echo hi"},
		{"inline backticks with padding", "  `ls -la`  ", "ls -la"},
		{"leading fence only", "```\necho hi", "echo hi"},
		{"trailing fence only", "echo hi\n```", "echo hi"},
		{"bare fence", "```", ""},
		{"whitespace only", "   \n  ", ""},
		{"empty", "", ""},
		{"interior backticks survive", "echo `date` now", "echo `date` now"},
		{"trailing backtick stripped", "echo `date`", "echo `date"},
		{"surrounding whitespace", "\n  df -h  \n", "df -h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Strip(tt.in); got != tt.want {
				t.Errorf("Strip(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripIdempotent(t *testing.T) {
	inputs := []string{
		"ls -la",
		"```\necho hi\n```",
		"  `ls -la`  ",
		"echo `date` now",
		"echo `date`",
		"",
	}
	for _, in := range inputs {
		once := Strip(in)
		twice := Strip(once)
		if once != twice {
			t.Errorf("Strip not idempotent for %q: once %q, twice %q", in, once, twice)
		}
	}
}
