package cli

import (
	"os"

	"github.com/brandonbloom/buildrun/internal/buildtree"
	"github.com/brandonbloom/buildrun/internal/launch"
	"github.com/brandonbloom/buildrun/internal/runner"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func loadTreeFromWD() (*buildtree.Tree, error) {
	return buildtree.FromWD()
}

func newLauncher(cmd *cobra.Command, tree *buildtree.Tree, logger *log.Logger) (*launch.Launcher, error) {
	r, err := runner.New(tree.Config)
	if err != nil {
		return nil, err
	}
	logger.Debug("run directory", "dir", tree.RunDir, "config", tree.HasConfig(), "runner", r.Name())
	return &launch.Launcher{
		RunDir:  tree.RunDir,
		Config:  tree.Config,
		Environ: os.Environ(),
		Runner:  r,
		IO: runner.IO{
			Stdin:  cmd.InOrStdin(),
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
		},
		Logger: logger,
	}, nil
}
