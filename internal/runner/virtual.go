package runner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// Virtual interprets the command line with an in-process POSIX shell, so no
// system shell is needed. Programs named by the command are still executed.
type Virtual struct{}

func NewVirtual() *Virtual {
	return &Virtual{}
}

func (r *Virtual) Name() string {
	return "virtual"
}

func (r *Virtual) Available() error {
	return nil
}

// Parse checks that command is a valid shell command line.
func (r *Virtual) Parse(command string) (*syntax.File, error) {
	prog, err := syntax.NewParser().Parse(strings.NewReader(command), "command")
	if err != nil {
		return nil, fmt.Errorf("failed to parse command: %w", err)
	}
	return prog, nil
}

func (r *Virtual) Run(ctx context.Context, command string, env []string, stdio IO) (int, error) {
	prog, err := r.Parse(command)
	if err != nil {
		return 1, err
	}

	runner, err := interp.New(
		interp.Env(expand.ListEnviron(env...)),
		interp.StdIO(stdio.Stdin, stdio.Stdout, stdio.Stderr),
	)
	if err != nil {
		return 1, fmt.Errorf("failed to create interpreter: %w", err)
	}

	stop := holdInterrupts()
	defer stop()

	if err := runner.Run(ctx, prog); err != nil {
		var status interp.ExitStatus
		if errors.As(err, &status) {
			return int(status), nil
		}
		return 1, fmt.Errorf("command execution failed: %w", err)
	}
	return 0, nil
}
