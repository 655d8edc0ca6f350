package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/matthewhughes934/githooks/internal/config"
	"github.com/matthewhughes934/githooks/internal/hook"
)

// prepareCommitMsgCmd is the hook entrypoint invoked by the installed shim.
// Arguments mirror the git prepare-commit-msg signature: message file,
// optional commit source, optional commit SHA (ignored).
//
// Returning non-zero from a prepare-commit-msg hook aborts the commit, and
// there is no good reason to abort a commit over a missing ticket, so this
// command always exits 0.
var prepareCommitMsgCmd = &cobra.Command{
	Use:    "prepare-commit-msg <msg-file> [source] [sha]",
	Short:  "Run the prepare-commit-msg hook (called from .git/hooks)",
	Hidden: true,
	Args:   cobra.RangeArgs(1, 3),
	Run: func(cmd *cobra.Command, args []string) {
		runPrepareCommitMsg(args)
	},
}

func init() {
	rootCmd.AddCommand(prepareCommitMsgCmd)
}

func runPrepareCommitMsg(args []string) {
	msgFile := args[0]
	sourceArg := ""
	if len(args) >= 2 {
		sourceArg = args[1]
	}

	settings, err := config.Load(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "githooks: %v\n", err)
		return
	}

	slog.Debug("running prepare-commit-msg",
		"msg_file", msgFile,
		"source", sourceArg,
		"labels", settings.Labels,
	)

	runner := hook.NewRunner(settings)
	if err := runner.Run(msgFile, sourceArg); err != nil {
		fmt.Fprintf(os.Stderr, "githooks: %v\n", err)
	}
}
