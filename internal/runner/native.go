package runner

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Native runs the command line through a system shell as `shell -c command`.
type Native struct {
	Shell string
}

func NewNative(shell string) *Native {
	if shell == "" {
		shell = "/bin/sh"
	}
	return &Native{Shell: shell}
}

func (r *Native) Name() string {
	return "native"
}

func (r *Native) Available() error {
	if _, err := exec.LookPath(r.Shell); err != nil {
		return fmt.Errorf("shell %s not found: %w", r.Shell, err)
	}
	return nil
}

func (r *Native) Run(ctx context.Context, command string, env []string, stdio IO) (int, error) {
	cmd := exec.CommandContext(ctx, r.Shell, "-c", command)
	cmd.Env = env
	cmd.Stdin = stdio.Stdin
	cmd.Stdout = stdio.Stdout
	cmd.Stderr = stdio.Stderr

	stop := holdInterrupts()
	defer stop()

	if err := cmd.Start(); err != nil {
		return 1, fmt.Errorf("start %s: %w", r.Shell, err)
	}
	return exitStatus(cmd.Wait())
}

func exitStatus(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		if code := ee.ExitCode(); code >= 0 {
			return code, nil
		}
		// Killed by a signal.
		return 1, nil
	}
	return 1, err
}
