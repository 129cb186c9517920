package cli

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func runLaunch(cmd *cobra.Command, args []string) error {
	tree, err := loadTreeFromWD()
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr())

	l, err := newLauncher(cmd, tree, logger)
	if err != nil {
		return err
	}

	plan, err := l.Plan(args)
	if err != nil {
		return reportLaunchError(cmd, err)
	}
	if plan.Interactive() {
		warnIfNoTerminal(cmd, logger)
	}

	code, err := l.Launch(cmd.Context(), plan)
	if err != nil {
		return err
	}
	if code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}

func warnIfNoTerminal(cmd *cobra.Command, logger *log.Logger) {
	if stdinIsTerminal(cmd) {
		return
	}
	logger.Warn("starting an interactive session without a terminal on stdin")
}

func stdinIsTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
