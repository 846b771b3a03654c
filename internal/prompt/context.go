package prompt

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// DefaultMaxEntries bounds how many directory entries reach the model.
const DefaultMaxEntries = 50

// EmptyDirContext is reported when the directory has no visible entries
// or cannot be read at all.
const EmptyDirContext = "(empty directory)"

// SampleDirectory lists the visible entries of dir as a comma-joined,
// lexicographically sorted string, for embedding in the system prompt.
// Hidden entries (dot-prefixed) are excluded. Past maxEntries the listing
// is truncated with a count of what was omitted. Any read error degrades
// to EmptyDirContext; the model just gets less context.
func SampleDirectory(dir string, maxEntries int) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return EmptyDirContext
	}

	var names []string
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, entry.Name())
	}
	if len(names) == 0 {
		return EmptyDirContext
	}

	sort.Strings(names)

	if maxEntries > 0 && len(names) > maxEntries {
		omitted := len(names) - maxEntries
		return strings.Join(names[:maxEntries], ", ") + fmt.Sprintf(", ... (+%d more)", omitted)
	}
	return strings.Join(names, ", ")
}

// SampleWorkingDirectory samples the process's current directory.
func SampleWorkingDirectory() string {
	dir, err := os.Getwd()
	if err != nil {
		return EmptyDirContext
	}
	return SampleDirectory(dir, DefaultMaxEntries)
}
