// Package prompt builds the model-facing system prompt from the session
// context and a bounded sample of the working directory.
package prompt

import "fmt"

const systemTemplate = `You are a command generator for %s. Return ONLY the raw command string; no markdown, no backticks, no explanations. Target OS: %s. Shell: %s. Prefer GNU coreutils.
The user's current directory contains: %s.
Use the directory contents to resolve references like "that file" or "the archive". Emit exactly one command line.`

// BuildSystemPrompt formats the fixed instruction template. Pure function;
// stable output for stable inputs.
func BuildSystemPrompt(osName, shellName, dirContext string) string {
	return fmt.Sprintf(systemTemplate, osName, osName, shellName, dirContext)
}
