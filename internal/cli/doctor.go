package cli

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/brandonbloom/buildrun/internal/buildtree"
	"github.com/brandonbloom/buildrun/internal/launch"
	"github.com/brandonbloom/buildrun/internal/runner"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

func newDoctorCommand() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "doctor [OUTPUT_DIR...]",
		Short: "Diagnose the run directory and the interpreters of the given output directories",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd, args, verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show passing checks too")
	return cmd
}

type doctorContext struct {
	Tree *buildtree.Tree
}

type doctorCheck struct {
	Name string
	Fn   func(*doctorContext) error
}

func runDoctor(cmd *cobra.Command, outputDirs []string, verbose bool) error {
	ctx := &doctorContext{}
	checks := []doctorCheck{
		{Name: "configuration", Fn: func(c *doctorContext) error {
			tree, err := loadTreeFromWD()
			if err != nil {
				return err
			}
			c.Tree = tree
			return nil
		}},
		{Name: "properties file readable", Fn: func(c *doctorContext) error {
			return withTree(c, func(t *buildtree.Tree) error {
				f, err := os.Open(t.Config.PropertiesPath(t.RunDir))
				if err != nil {
					return err
				}
				return f.Close()
			})
		}},
		{Name: "scripts directory present", Fn: func(c *doctorContext) error {
			return withTree(c, func(t *buildtree.Tree) error {
				return requireDir(t.Config.ScriptsPath(t.RunDir))
			})
		}},
		{Name: "bindings directory present", Fn: func(c *doctorContext) error {
			return withTree(c, func(t *buildtree.Tree) error {
				return requireDir(t.Config.BindingsPath(t.RunDir))
			})
		}},
		{Name: "runner available", Fn: func(c *doctorContext) error {
			return withTree(c, func(t *buildtree.Tree) error {
				r, err := runner.New(t.Config)
				if err != nil {
					return err
				}
				return r.Available()
			})
		}},
	}
	for _, dir := range outputDirs {
		checks = append(checks, doctorCheck{
			Name: "interpreter for " + dir,
			Fn:   checkInterpreter(dir),
		})
	}

	width := 0
	for _, check := range checks {
		width = max(width, runewidth.StringWidth(check.Name))
	}

	var failures []string
	for _, check := range checks {
		name := runewidth.FillRight(check.Name, width)
		err := check.Fn(ctx)
		if err != nil {
			failures = append(failures, fmt.Sprintf("✗ %s  %v", name, err))
			continue
		}
		if verbose {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s\n", check.Name)
		}
	}

	if len(failures) > 0 {
		for _, failure := range failures {
			fmt.Fprintln(cmd.ErrOrStderr(), failure)
		}
		return fmt.Errorf("%d doctor checks failed", len(failures))
	}

	fmt.Fprintln(cmd.OutOrStdout(), "healthy!")
	return nil
}

func withTree(ctx *doctorContext, fn func(*buildtree.Tree) error) error {
	if ctx.Tree == nil {
		return errors.New("run directory not loaded")
	}
	return fn(ctx.Tree)
}

func requireDir(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}

func checkInterpreter(outputDir string) func(*doctorContext) error {
	return func(c *doctorContext) error {
		return withTree(c, func(t *buildtree.Tree) error {
			out, err := launch.ResolveOutputPath(t.RunDir, outputDir)
			if err != nil {
				return err
			}
			interp, err := launch.ResolveInterpreter(t.Config.PropertiesPath(t.RunDir), out.Target)
			if err != nil {
				return err
			}
			if _, err := exec.LookPath(interp.Executable); err != nil {
				return fmt.Errorf("%s not found", interp.Executable)
			}
			return nil
		})
	}
}
