// Package hook wires the ticket resolver and commit message editor into the
// prepare-commit-msg flow: read the message file, resolve the branch, insert
// the ticket line, write the file back only when it changed.
//
// Nothing in this package aborts a commit. Branch resolution failures are
// logged and treated as "no ticket"; only problems touching the message file
// itself are reported to the caller, and even those the caller logs and
// swallows so the hook exits 0.
package hook

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/matthewhughes934/githooks/internal/commitmsg"
	"github.com/matthewhughes934/githooks/internal/config"
	"github.com/matthewhughes934/githooks/internal/git"
	"github.com/matthewhughes934/githooks/internal/ticket"
)

// Runner executes the prepare-commit-msg hook logic.
type Runner struct {
	gitCtx    *git.Context
	resolver  *ticket.Resolver
	editor    *commitmsg.Editor
	errWriter io.Writer
}

// Option configures Runner.
type Option func(*Runner)

// WithErrWriter sets where diagnostics are written. Defaults to os.Stderr.
func WithErrWriter(w io.Writer) Option {
	return func(r *Runner) {
		r.errWriter = w
	}
}

// WithGitContext sets the git context used for branch resolution.
func WithGitContext(gitCtx *git.Context) Option {
	return func(r *Runner) {
		r.gitCtx = gitCtx
	}
}

// NewRunner builds a runner from resolved settings.
func NewRunner(settings *config.Settings, opts ...Option) *Runner {
	r := &Runner{
		gitCtx:    git.New(""),
		resolver:  ticket.NewResolver(settings.Labels),
		editor:    commitmsg.NewEditor(settings.Prefix, settings.Sources),
		errWriter: os.Stderr,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run applies the hook to the message file. sourceArg is the raw second
// hook argument ("" when git passed none).
//
// The returned error covers only message file problems; the caller logs it
// and still exits 0.
func (r *Runner) Run(msgFile, sourceArg string) error {
	source, err := commitmsg.ParseSource(sourceArg)
	if err != nil {
		// An unexpected source is not one we insert for
		fmt.Fprintf(r.errWriter, "githooks: %v, skipping\n", err)
		return nil
	}

	branch, err := r.gitCtx.CurrentBranch()
	if err != nil {
		// No branch means no ticket: the commit proceeds untouched
		fmt.Fprintf(r.errWriter, "githooks: %v\n", err)
		return nil
	}

	tkt, found := r.resolver.Find(branch)
	if !found {
		return nil
	}

	content, mode, err := readMessageFile(msgFile)
	if err != nil {
		return err
	}

	updated, changed := r.editor.Apply(tkt, source, content)
	if !changed {
		return nil
	}

	if err := os.WriteFile(msgFile, []byte(updated), mode); err != nil {
		return fmt.Errorf("write commit message file: %w", err)
	}
	return nil
}

func readMessageFile(path string) (string, fs.FileMode, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", 0, fmt.Errorf("stat commit message file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", 0, fmt.Errorf("read commit message file: %w", err)
	}

	return string(data), info.Mode().Perm(), nil
}
