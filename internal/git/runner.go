package git

import (
	"bytes"
	"os/exec"
	"strings"
)

// CommandRunner executes a command in a directory and returns its stdout.
// Implementations must return trimmed output on success and a *CommandError
// on failure.
type CommandRunner interface {
	Run(dir, name string, args ...string) (string, error)
}

// CommandError describes a command that could not be started or exited
// non-zero.
type CommandError struct {
	Name   string   // Command name (e.g., "git")
	Args   []string // Arguments passed to the command
	Stderr string   // Captured stderr, if any
	Err    error    // Underlying error
}

func (e *CommandError) Error() string {
	cmd := e.Name
	if len(e.Args) > 0 {
		cmd += " " + strings.Join(e.Args, " ")
	}
	if e.Stderr != "" {
		return cmd + ": " + e.Err.Error() + ": " + strings.TrimSpace(e.Stderr)
	}
	return cmd + ": " + e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExecRunner runs commands via os/exec.
type ExecRunner struct{}

// NewExecRunner returns a runner backed by os/exec.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the command with the given working directory.
// An empty dir runs the command in the process working directory.
func (r *ExecRunner) Run(dir, name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &CommandError{
			Name:   name,
			Args:   args,
			Stderr: stderr.String(),
			Err:    err,
		}
	}

	return strings.TrimSpace(stdout.String()), nil
}
