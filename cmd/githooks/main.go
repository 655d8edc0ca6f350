// Command githooks installs and runs a prepare-commit-msg hook that appends
// a ticket line, taken from the current branch name, to commit messages.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Version is the githooks version, overridable at build time via
// -ldflags "-X main.Version=...".
var Version = "0.1.0"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "githooks",
	Short: "Append ticket identifiers from branch names to commit messages",
	Long: `githooks manages a prepare-commit-msg hook that looks for a ticket
identifier (e.g. FOO-1234) in the current branch name and appends a
"Ticket: FOO-1234" line to the commit message body.

Configuration is resolved from built-in defaults, ~/.config/githooks/config.yaml,
.githooks.yaml in the git root, and GITHOOKS_* environment variables.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the githooks version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("githooks " + Version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
