package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExplainCommand() *cobra.Command {
	return &cobra.Command{
		Use:                "explain [flag-string] OUTPUT_DIR [script [script_args...]]",
		Short:              "Show what would be run for OUTPUT_DIR without running it",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE:               runExplain,
	}
}

func runExplain(cmd *cobra.Command, args []string) error {
	tree, err := loadTreeFromWD()
	if err != nil {
		return err
	}
	l, err := newLauncher(cmd, tree, newLogger(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}

	plan, err := l.Plan(args)
	if err != nil {
		return reportLaunchError(cmd, err)
	}

	script := plan.Script
	if plan.Interactive() {
		script = "(interactive)"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run directory: %s\n", l.RunDir)
	fmt.Fprintf(out, "properties:    %s\n", l.Config.PropertiesPath(l.RunDir))
	fmt.Fprintf(out, "target:        %s\n", plan.Output.Target)
	fmt.Fprintf(out, "executable:    %s\n", plan.Interpreter.Executable)
	fmt.Fprintf(out, "script:        %s\n", script)
	fmt.Fprintf(out, "runner:        %s\n", l.Runner.Name())
	fmt.Fprintln(out, "environment:")
	for _, kv := range plan.Env.Overrides() {
		fmt.Fprintf(out, "  %s\n", kv)
	}
	fmt.Fprintf(out, "command:       %s\n", plan.Command)
	return nil
}
