package executor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
)

// ErrShellNotFound is returned when the shell executable cannot be launched.
var ErrShellNotFound = errors.New("shell not found")

// Run executes the command string through the given shell executable,
// inheriting the controlling terminal so the command can interact with the
// user directly. The child's exit status is returned as data; a non-zero
// exit is not a Go error.
func Run(command, shellPath string) (int, error) {
	cmd := exec.Command(shellPath, "-c", command)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return 1, fmt.Errorf("%w: %s", ErrShellNotFound, shellPath)
	}
	return 1, err
}
