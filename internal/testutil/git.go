// Package testutil creates throwaway git repositories for tests that
// exercise real git commands.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// SetupTestRepo creates a temporary git repository with one commit.
// Returns the path to the repository; cleanup is handled by t.TempDir.
func SetupTestRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	RunGit(t, dir, "init")
	RunGit(t, dir, "config", "user.email", "test@test.com")
	RunGit(t, dir, "config", "user.name", "Test User")

	readme := filepath.Join(dir, "README.md")
	if err := os.WriteFile(readme, []byte("# Test Repository\n"), 0o644); err != nil {
		t.Fatalf("failed to create README: %v", err)
	}

	RunGit(t, dir, "add", ".")
	RunGit(t, dir, "commit", "-m", "Initial commit")

	return dir
}

// CheckoutNewBranch creates and checks out a branch in the test repo.
func CheckoutNewBranch(t *testing.T, repoDir, branch string) {
	t.Helper()

	RunGit(t, repoDir, "checkout", "-b", branch)
}

// RunGit runs a git command in the repo, failing the test on error.
// Returns combined output with surrounding whitespace intact.
func RunGit(t *testing.T, repoDir string, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = repoDir
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, output)
	}
	return string(output)
}
