package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/brandonbloom/buildrun/internal/launch"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var colorFailure = color.New(color.FgRed, color.Bold).SprintFunc()

// ExitError carries the status the process should exit with.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// reportLaunchError prints usage and config failures the way users expect
// from the launcher and turns them into exit status 1. Other errors pass
// through untouched.
func reportLaunchError(cmd *cobra.Command, err error) error {
	var usage *launch.UsageError
	var cfgErr *launch.ConfigError
	if !errors.As(err, &usage) && !errors.As(err, &cfgErr) {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, colorFailure(err.Error()))
	printUsage(out, cmd.Root().Name())
	return &ExitError{Code: 1}
}

func printUsage(w io.Writer, prog string) {
	fmt.Fprintln(w, "Usage:", prog, "[flag-string] OUTPUT_DIR [script[.ext] [script_args...]]")
	fmt.Fprintln(w, "\tOUTPUT_DIR is in the format of \"x64/Debug/Python3\"")
}
