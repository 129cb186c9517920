// Package runner hands a launch command line to something that executes it.
//
// Runners take a single string, the way a C system() call would, and report
// the exit status of what it ran. They never inspect the output.
package runner

import (
	"context"
	"fmt"
	"io"

	"github.com/brandonbloom/buildrun/internal/config"
)

// IO is the standard streams handed to the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Runner executes a command line with the given environment.
type Runner interface {
	Name() string
	// Available reports why the runner cannot be used, if it cannot.
	Available() error
	// Run blocks until the command finishes. A command that ran and exited
	// reports its status with a nil error.
	Run(ctx context.Context, command string, env []string, stdio IO) (int, error)
}

// New returns the runner selected by cfg.
func New(cfg config.Config) (Runner, error) {
	switch cfg.Runner {
	case config.RunnerNative:
		return NewNative(cfg.Shell), nil
	case config.RunnerVirtual:
		return NewVirtual(), nil
	default:
		return nil, fmt.Errorf("unknown runner %q", cfg.Runner)
	}
}
