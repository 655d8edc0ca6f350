// Package git runs the git commands the hook and installer need:
// branch resolution, git-dir discovery, and hooks-dir discovery.
//
// Core types:
//   - Context: a working directory plus a CommandRunner
//   - CommandRunner: interface for executing git commands (mockable in tests)
//
// Example usage:
//
//	gitCtx := git.New(".")
//	branch, err := gitCtx.CurrentBranch()
package git
