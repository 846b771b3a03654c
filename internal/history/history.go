// Package history persists the rolling conversation log at ~/.tell/history.json.
// The log is capped rather than summarized; a corrupt or missing file is
// treated as an empty history, never as an error.
package history

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// MaxTurns is the number of retained turns (5 user/assistant exchanges).
const MaxTurns = 10

// Turn is one message in the conversation. Immutable once created.
type Turn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Store reads and writes the history file. Construct once per process and
// pass it to whatever needs it; there is no package-level state.
//
// Access is not locked: concurrent invocations may race on the file and the
// last writer wins. The tool is single-user, single-session by design.
type Store struct {
	path string
}

// NewStore returns a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns ~/.tell/history.json.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".tell", "history.json")
}

// Load reads the persisted turns. A missing or unparseable file yields an
// empty slice and no error.
func (s *Store) Load() []Turn {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	var turns []Turn
	if err := json.Unmarshal(data, &turns); err != nil {
		return nil
	}
	return turns
}

// Save writes the last MaxTurns turns, dropping the oldest first. Parent
// directories are created as needed and the write is atomic (temp file
// plus rename) so a crash never leaves a half-written log.
func (s *Store) Save(turns []Turn) error {
	if len(turns) > MaxTurns {
		turns = turns[len(turns)-MaxTurns:]
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(turns, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".history-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// Clear deletes the history file. Absence is not an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
