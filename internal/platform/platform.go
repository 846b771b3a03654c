// Package platform provides OS and shell detection helpers.
package platform

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrUnsupportedPlatform is returned when the host is not a supported OS.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// DefaultShell is used when $SHELL is unset.
const DefaultShell = "/bin/bash"

// Info holds the session context, resolved once per invocation.
type Info struct {
	OS        string
	ShellName string // basename, used for syntax selection
	ShellPath string // full path, used for execution
}

// DetectOS returns a normalized OS identifier. Only Linux-family hosts
// are supported; anything else is fatal to the caller.
func DetectOS() (string, error) {
	if runtime.GOOS == "linux" {
		return "Linux", nil
	}
	return "", ErrUnsupportedPlatform
}

// DetectShell returns the user's shell name and executable path from
// $SHELL, defaulting to /bin/bash. It never fails.
func DetectShell() (name, path string) {
	path = os.Getenv("SHELL")
	if path == "" {
		path = DefaultShell
	}
	return strings.ToLower(filepath.Base(path)), path
}

// Detect resolves the full session context.
func Detect() (Info, error) {
	osName, err := DetectOS()
	if err != nil {
		return Info{}, err
	}
	name, path := DetectShell()
	return Info{OS: osName, ShellName: name, ShellPath: path}, nil
}
