package git

import (
	"errors"
	"fmt"
	"strings"
)

// Test support for packages exercising git operations without a real
// repository. Kept outside _test.go files so other packages can use it.

// MockCall records a single command the mock runner received.
type MockCall struct {
	Dir  string
	Name string
	Args []string
}

// SequentialMockRunner returns queued responses in order, one per Run call.
type SequentialMockRunner struct {
	responses []mockResponse
	calls     []MockCall
}

type mockResponse struct {
	output string
	err    error
}

// NewSequentialMockRunner creates an empty mock runner.
func NewSequentialMockRunner() *SequentialMockRunner {
	return &SequentialMockRunner{}
}

// AddOutput queues a response with the given output and error.
func (r *SequentialMockRunner) AddOutput(output string, err error) {
	r.responses = append(r.responses, mockResponse{output: output, err: err})
}

// AddOutputError queues a failing response. If err is nil a CommandError
// wrapping stderr is returned instead.
func (r *SequentialMockRunner) AddOutputError(output, stderr string, err error) {
	if err == nil {
		err = &CommandError{
			Name:   "git",
			Stderr: stderr,
			Err:    errors.New("exit status 1"),
		}
	}
	r.responses = append(r.responses, mockResponse{output: output, err: err})
}

// Run pops the next queued response and records the call.
func (r *SequentialMockRunner) Run(dir, name string, args ...string) (string, error) {
	r.calls = append(r.calls, MockCall{Dir: dir, Name: name, Args: args})

	if len(r.responses) == 0 {
		return "", fmt.Errorf("unexpected command: %s %s", name, strings.Join(args, " "))
	}

	resp := r.responses[0]
	r.responses = r.responses[1:]
	return resp.output, resp.err
}

// Calls returns the commands received so far.
func (r *SequentialMockRunner) Calls() []MockCall {
	return r.calls
}
