package cli

import (
	"strings"

	"github.com/fatih/color"
)

var (
	commandColor  = color.New(color.FgGreen, color.Bold)
	keywordColor  = color.New(color.FgBlue, color.Bold)
	flagColor     = color.New(color.FgCyan)
	stringColor   = color.New(color.FgYellow)
	operatorColor = color.New(color.FgMagenta)
)

var posixKeywords = []string{
	"if", "then", "elif", "else", "fi",
	"for", "while", "until", "do", "done",
	"case", "esac", "in", "function",
}

// zsh adds its own reserved words on top of the POSIX set.
var zshKeywords = []string{"foreach", "repeat", "select", "always", "end"}

// Highlight colors a command for terminal display. The shell name selects
// the dialect: "zsh" gets zsh reserved words, everything else is treated as
// a POSIX shell. Color output degrades to plain text on non-terminals via
// the color library's own gating.
func Highlight(command, shellName string) string {
	keywords := make(map[string]bool, len(posixKeywords)+len(zshKeywords))
	for _, kw := range posixKeywords {
		keywords[kw] = true
	}
	if shellName == "zsh" {
		for _, kw := range zshKeywords {
			keywords[kw] = true
		}
	}

	var b strings.Builder
	runes := []rune(command)
	cmdPos := true // next bare word is in command position

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == ' ' || r == '\t':
			b.WriteRune(r)
			i++

		case r == '\'' || r == '"':
			j := i + 1
			for j < len(runes) && runes[j] != r {
				j++
			}
			if j < len(runes) {
				j++ // include the closing quote
			}
			b.WriteString(stringColor.Sprint(string(runes[i:j])))
			cmdPos = false
			i = j

		case isOperator(r):
			j := i
			for j < len(runes) && isOperator(runes[j]) {
				j++
			}
			b.WriteString(operatorColor.Sprint(string(runes[i:j])))
			cmdPos = true // what follows a pipe or separator is a new command
			i = j

		default:
			j := i
			for j < len(runes) && !isWordBoundary(runes[j]) {
				j++
			}
			word := string(runes[i:j])
			switch {
			case keywords[word]:
				b.WriteString(keywordColor.Sprint(word))
			case strings.HasPrefix(word, "-"):
				b.WriteString(flagColor.Sprint(word))
			case cmdPos:
				b.WriteString(commandColor.Sprint(word))
			default:
				b.WriteString(word)
			}
			cmdPos = false
			i = j
		}
	}

	return b.String()
}

func isOperator(r rune) bool {
	switch r {
	case '|', '&', ';', '>', '<':
		return true
	}
	return false
}

func isWordBoundary(r rune) bool {
	return r == ' ' || r == '\t' || r == '\'' || r == '"' || isOperator(r)
}
