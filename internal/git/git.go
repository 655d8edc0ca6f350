package git

import (
	"path/filepath"
)

// Context manages git operations for a repository.
type Context struct {
	workDir string        // Working directory for commands
	runner  CommandRunner // Command runner (defaults to ExecRunner)
}

// Option configures Context.
type Option func(*Context)

// New creates a git context rooted at the given directory.
// It performs no validation: hook invocations must never fail before the
// first git command runs, so callers check IsRepo where it matters.
func New(dir string, opts ...Option) *Context {
	g := &Context{
		workDir: dir,
		runner:  NewExecRunner(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// WithRunner sets a custom command runner for git operations.
// This is primarily used for testing to inject mock command execution.
func WithRunner(runner CommandRunner) Option {
	return func(g *Context) {
		g.runner = runner
	}
}

// WorkDir returns the working directory for git commands.
func (g *Context) WorkDir() string {
	return g.workDir
}

// IsRepo reports whether the working directory is inside a git repository.
func (g *Context) IsRepo() bool {
	_, err := g.runGit("rev-parse", "--git-dir")
	return err == nil
}

// CurrentBranch returns the current branch name.
func (g *Context) CurrentBranch() (string, error) {
	branch, err := g.runGit("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", &Error{Op: "get current branch", Err: err}
	}
	return branch, nil
}

// CommonDir returns the common git directory. For worktrees this is the
// main repository's .git directory, which is where shared hooks live.
func (g *Context) CommonDir() (string, error) {
	dir, err := g.runGit("rev-parse", "--git-common-dir")
	if err != nil {
		return "", &Error{Op: "get git dir", Err: err}
	}
	// rev-parse may return a path relative to the working directory
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(g.workDir, dir)
	}
	return filepath.Clean(dir), nil
}

// HooksDir returns the directory git reads hooks from.
// Honors core.hooksPath when set, otherwise falls back to the hooks
// directory under the common git dir.
func (g *Context) HooksDir() (string, error) {
	if path, err := g.runGit("config", "core.hooksPath"); err == nil && path != "" {
		if !filepath.IsAbs(path) {
			path = filepath.Join(g.workDir, path)
		}
		return filepath.Clean(path), nil
	}

	common, err := g.CommonDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(common, "hooks"), nil
}

// runGit executes a git command and returns stdout.
func (g *Context) runGit(args ...string) (string, error) {
	return g.runner.Run(g.workDir, "git", args...)
}
