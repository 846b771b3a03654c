package executor

import (
	"errors"
	"testing"
)

func TestRunExitCodeZero(t *testing.T) {
	code, err := Run("true", "/bin/sh")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
}

func TestRunPropagatesExitCode(t *testing.T) {
	code, err := Run("exit 3", "/bin/sh")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if code != 3 {
		t.Errorf("exit code = %d, want 3", code)
	}
}

func TestRunShellNotFound(t *testing.T) {
	_, err := Run("true", "/nonexistent/shell")
	if !errors.Is(err, ErrShellNotFound) {
		t.Errorf("err = %v, want ErrShellNotFound", err)
	}
}
