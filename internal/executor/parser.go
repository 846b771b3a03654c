// Package executor cleans up model output and runs the confirmed command
// through the user's shell.
package executor

import "strings"

// Strip removes formatting artifacts the model may add despite being told
// not to: one leading and one trailing fenced-code delimiter line, then any
// backticks and whitespace hugging the command. It is a deliberate string
// trim, not a markdown parser, and it is idempotent.
func Strip(raw string) string {
	cleaned := strings.TrimSpace(raw)

	if strings.HasPrefix(cleaned, "```") {
		if idx := strings.Index(cleaned, "\n"); idx >= 0 {
			cleaned = cleaned[idx+1:]
		} else {
			cleaned = ""
		}
	}
	if strings.HasSuffix(cleaned, "```") {
		cleaned = cleaned[:strings.LastIndex(cleaned, "```")]
	}

	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.Trim(cleaned, "`")
	return strings.TrimSpace(cleaned)
}
