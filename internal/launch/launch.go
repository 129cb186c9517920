package launch

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/brandonbloom/buildrun/internal/config"
	"github.com/brandonbloom/buildrun/internal/runner"
)

// Plan is everything resolved for a launch before anything is spawned.
type Plan struct {
	Request     Request
	Output      OutputPath
	Interpreter Interpreter
	// Script is the resolved script path; empty for an interactive session.
	Script string
	Env    Environment
	// Environ is the complete environment handed to the child.
	Environ []string
	Command string
}

// Interactive reports whether the interpreter is started without a script.
func (p *Plan) Interactive() bool {
	return p.Script == ""
}

// Launcher resolves interpreter invocations for a run directory.
type Launcher struct {
	RunDir string
	Config config.Config
	// Environ is the inherited environment; it is copied, never modified.
	Environ []string
	Runner  runner.Runner
	IO      runner.IO
	Logger  *log.Logger
}

func (l *Launcher) logger() *log.Logger {
	if l.Logger == nil {
		return log.New(io.Discard)
	}
	return l.Logger
}

// Plan parses args and resolves the output directory, interpreter, script and
// environment. It only reads the filesystem; calling it twice with the same
// inputs yields the same plan.
func (l *Launcher) Plan(args []string) (*Plan, error) {
	logger := l.logger()

	req, err := ParseArgs(args, l.Config.DefaultScript)
	if err != nil {
		return nil, err
	}

	out, err := ResolveOutputPath(l.RunDir, req.OutputDir)
	if err != nil {
		return nil, err
	}
	logger.Debug("output directory", "dir", out.Dir, "variant", out.Variant, "target", out.Target)

	propsPath := l.Config.PropertiesPath(l.RunDir)
	resolved, err := ResolveInterpreter(propsPath, out.Target)
	if err != nil {
		return nil, err
	}
	logger.Debug("interpreter", "file", propsPath, "location", resolved.Location, "template", resolved.Template, "exe", resolved.Executable)

	env := ComposeEnvironment(l.Config, l.RunDir, out, l.Environ)
	script := ResolveScript(l.Config.ScriptsPath(l.RunDir), req.Script)

	return &Plan{
		Request:     req,
		Output:      out,
		Interpreter: resolved,
		Script:      script,
		Env:         env,
		Environ:     env.Apply(l.Environ),
		Command:     CommandLine(resolved.Executable, req.FlagString, script, req.TrailingString()),
	}, nil
}

// Launch announces the plan on stdout and runs it, returning the child's exit code.
func (l *Launcher) Launch(ctx context.Context, plan *Plan) (int, error) {
	if l.Runner == nil {
		return 1, fmt.Errorf("no runner configured")
	}
	if w := l.IO.Stdout; w != nil {
		fmt.Fprintf(w, "%s=%s\n", plan.Env.ModulePathVar, plan.Env.ModulePath)
		fmt.Fprintln(w, "Issuing command:", plan.Command)
	}
	l.logger().Debug("spawning", "runner", l.Runner.Name(), "overrides", plan.Env.Overrides())
	return l.Runner.Run(ctx, plan.Command, plan.Environ, l.IO)
}

// Run plans and launches in one step.
func (l *Launcher) Run(ctx context.Context, args []string) (int, error) {
	plan, err := l.Plan(args)
	if err != nil {
		return 1, err
	}
	return l.Launch(ctx, plan)
}
