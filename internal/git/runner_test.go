package git

import (
	"errors"
	"testing"
)

func TestNewExecRunner(t *testing.T) {
	runner := NewExecRunner()
	if runner == nil {
		t.Error("NewExecRunner should return non-nil runner")
	}
}

func TestExecRunner_Run_Success(t *testing.T) {
	runner := NewExecRunner()

	// Run a simple command
	output, err := runner.Run("", "echo", "hello")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if output != "hello" {
		t.Errorf("output = %q, want %q", output, "hello")
	}
}

func TestExecRunner_Run_Error(t *testing.T) {
	runner := NewExecRunner()

	// Run a command that will fail
	_, err := runner.Run("", "ls", "/nonexistent/path/that/does/not/exist")
	if err == nil {
		t.Error("expected error for nonexistent path")
	}

	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Errorf("error should be CommandError, got %T", err)
	}
}

func TestExecRunner_Run_Dir(t *testing.T) {
	runner := NewExecRunner()

	dir := t.TempDir()
	output, err := runner.Run(dir, "pwd")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// macOS may report /private-prefixed temp dirs; only check the suffix
	if output == "" {
		t.Error("pwd output should not be empty")
	}
}

func TestCommandError_Error(t *testing.T) {
	err := &CommandError{
		Name:   "git",
		Args:   []string{"rev-parse", "HEAD"},
		Stderr: "fatal: not a git repository\n",
		Err:    errors.New("exit status 128"),
	}

	msg := err.Error()
	if msg != "git rev-parse HEAD: exit status 128: fatal: not a git repository" {
		t.Errorf("Error() = %q", msg)
	}
}
