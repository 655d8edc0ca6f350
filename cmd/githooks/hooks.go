package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matthewhughes934/githooks/internal/git"
)

// managedHooks are the hook names githooks installs.
var managedHooks = []string{"prepare-commit-msg"}

const shimVersionPrefix = "# githooks-shim "

// generateShim returns the hook script written into .git/hooks. It is a
// thin shim delegating to the githooks binary, so upgrading the binary
// upgrades the hook. If the binary is not on PATH the commit proceeds
// untouched rather than failing.
func generateShim(hookName string) string {
	return "#!/bin/sh\n" +
		shimVersionPrefix + Version + "\n" +
		"# Managed by githooks; 'githooks uninstall' removes this file.\n" +
		"\n" +
		"if ! command -v githooks >/dev/null 2>&1; then\n" +
		"  exit 0\n" +
		"fi\n" +
		"\n" +
		"exec githooks " + hookName + " \"$@\"\n"
}

// shimVersion extracts the shim version from a hook file.
// Returns ok=false when the file is not a githooks shim.
func shimVersion(path string) (version string, ok bool, err error) {
	file, err := os.Open(path)
	if err != nil {
		return "", false, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, shimVersionPrefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, shimVersionPrefix)), true, nil
		}
	}
	return "", false, scanner.Err()
}

// HookStatus describes one managed hook in the hooks directory.
type HookStatus struct {
	Name      string
	Installed bool   // a file exists at the hook path
	Managed   bool   // the file is a githooks shim
	Version   string // shim version, when managed
	Outdated  bool   // shim version differs from the binary version
}

func checkHooks(hooksDir string) []HookStatus {
	statuses := make([]HookStatus, 0, len(managedHooks))

	for _, hookName := range managedHooks {
		status := HookStatus{Name: hookName}

		version, managed, err := shimVersion(filepath.Join(hooksDir, hookName))
		if err == nil {
			status.Installed = true
			status.Managed = managed
			status.Version = version
			status.Outdated = managed && version != Version
		}

		statuses = append(statuses, status)
	}

	return statuses
}

func installHooks(hooksDir string, force bool) error {
	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return fmt.Errorf("create hooks directory: %w", err)
	}

	for _, hookName := range managedHooks {
		hookPath := filepath.Join(hooksDir, hookName)

		if _, managed, err := shimVersion(hookPath); err == nil && !managed && !force {
			return fmt.Errorf(
				"%s already exists and was not installed by githooks (use --force to overwrite)",
				hookPath,
			)
		}

		if err := os.WriteFile(hookPath, []byte(generateShim(hookName)), 0o755); err != nil {
			return fmt.Errorf("write %s: %w", hookPath, err)
		}
	}

	return nil
}

func uninstallHooks(hooksDir string) error {
	for _, hookName := range managedHooks {
		hookPath := filepath.Join(hooksDir, hookName)

		_, managed, err := shimVersion(hookPath)
		if err != nil {
			continue // hook not installed
		}
		if !managed {
			fmt.Fprintf(os.Stderr, "skipping %s: not installed by githooks\n", hookPath)
			continue
		}

		if err := os.Remove(hookPath); err != nil {
			return fmt.Errorf("remove %s: %w", hookPath, err)
		}
	}

	return nil
}

// hooksDir resolves the directory git reads hooks from, honoring worktrees
// and core.hooksPath.
func hooksDir() (string, error) {
	gitCtx := git.New("")
	if !gitCtx.IsRepo() {
		return "", git.ErrNotGitRepo
	}
	return gitCtx.HooksDir()
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the prepare-commit-msg hook into the current repository",
	Long: `Install a shim into the repository's hooks directory that runs
"githooks prepare-commit-msg" on each commit.

Existing hooks not written by githooks are left alone unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		dir, err := hooksDir()
		if err != nil {
			return err
		}

		if err := installHooks(dir, force); err != nil {
			return err
		}

		fmt.Println("Installed hooks:")
		for _, hookName := range managedHooks {
			fmt.Printf("  - %s\n", filepath.Join(dir, hookName))
		}
		return nil
	},
}

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove githooks-managed hooks from the current repository",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := hooksDir()
		if err != nil {
			return err
		}
		return uninstallHooks(dir)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the status of managed hooks",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := hooksDir()
		if err != nil {
			return err
		}

		for _, status := range checkHooks(dir) {
			switch {
			case !status.Installed:
				fmt.Printf("  ✗ %s: not installed\n", status.Name)
			case !status.Managed:
				fmt.Printf("  ⚠ %s: exists but not managed by githooks\n", status.Name)
			case status.Outdated:
				fmt.Printf("  ⚠ %s: installed (shim %s, current %s) - outdated\n",
					status.Name, status.Version, Version)
			default:
				fmt.Printf("  ✓ %s: installed (shim %s)\n", status.Name, status.Version)
			}
		}
		return nil
	},
}

func init() {
	installCmd.Flags().Bool("force", false, "overwrite hooks not installed by githooks")

	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
	rootCmd.AddCommand(listCmd)
}
