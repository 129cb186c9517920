package cli

import (
	"os"
	"slices"

	"github.com/spf13/cobra"
)

func Execute() error {
	args := os.Args[1:]
	cmd := newRootCommand(args)
	cmd.SetArgs(args)
	return cmd.Execute()
}

// newRootCommand builds the command tree for args. Subcommands are attached
// only when args[0] names one: cobra looks for a subcommand past anything
// shaped like a flag, which would turn a launch such as
// "-O x64/Debug/PY3 version" into the version subcommand.
func newRootCommand(args []string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buildrun [flag-string] OUTPUT_DIR [script[.ext] [script_args...]]",
		Short: "Run scripts through the interpreter a build output directory was made for",
		Long: `buildrun looks up the interpreter for OUTPUT_DIR in the run directory's
properties file, points the module search path at the bindings and the build
output, prepends the build configuration to PATH and runs the script.

OUTPUT_DIR is relative to the run directory, e.g. x64/Debug/Python3. A bare
script name is looked up in the scripts directory; an empty script ("")
starts an interactive session.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE:               runLaunch,
	}

	subcommands := []*cobra.Command{
		newExplainCommand(),
		newDoctorCommand(),
		newInitCommand(),
		newVersionCommand(),
	}
	if len(args) > 0 && selectsSubcommand(args[0], subcommands) {
		cmd.AddCommand(subcommands...)
	}

	return cmd
}

func selectsSubcommand(name string, subcommands []*cobra.Command) bool {
	if name == "help" {
		return true
	}
	return slices.ContainsFunc(subcommands, func(c *cobra.Command) bool {
		return c.Name() == name || c.HasAlias(name)
	})
}
