package launch

import (
	"os"
	"sort"
	"strings"

	"github.com/brandonbloom/buildrun/internal/config"
)

// Substitute replaces every $(target) in template with location. Other
// placeholders are left as they are.
func Substitute(template, target, location string) string {
	return strings.ReplaceAll(template, "$("+target+")", location)
}

// Environment holds the variables exported to the interpreter.
type Environment struct {
	ExecPathVar   string
	ExecPath      string
	ModulePathVar string
	ModulePath    string
	// DataVar is empty when no data directory is exported.
	DataVar string
	DataDir string
}

// ComposeEnvironment derives the child's variables from the validated output
// path and the inherited environment. The variant is prepended to the
// inherited execution path so build-tree libraries are found first.
func ComposeEnvironment(cfg config.Config, runDir string, out OutputPath, inherited []string) Environment {
	list := string(os.PathListSeparator)

	execPath := out.Variant
	if prev := getEnv(inherited, cfg.Env.ExecPath); prev != "" {
		execPath += list + prev
	}

	env := Environment{
		ExecPathVar:   cfg.Env.ExecPath,
		ExecPath:      execPath,
		ModulePathVar: cfg.Env.ModulePath,
		ModulePath:    cfg.BindingsPath(runDir) + list + out.Dir,
	}
	if name := cfg.Env.DataVar(); name != "" {
		env.DataVar = name
		env.DataDir = cfg.DataPath(runDir)
	}
	return env
}

// Overrides lists the exported variables as KEY=VALUE in a fixed order.
func (e Environment) Overrides() []string {
	out := []string{
		e.ExecPathVar + "=" + e.ExecPath,
		e.ModulePathVar + "=" + e.ModulePath,
	}
	if e.DataVar != "" {
		out = append(out, e.DataVar+"="+e.DataDir)
	}
	return out
}

// Apply overlays the exported variables onto a copy of inherited. The result
// is sorted so identical inputs give identical environments.
func (e Environment) Apply(inherited []string) []string {
	m := envMap(inherited)
	for _, kv := range e.Overrides() {
		k, v, _ := strings.Cut(kv, "=")
		m[k] = v
	}
	return envSlice(m)
}

func envMap(env []string) map[string]string {
	out := make(map[string]string, len(env))
	for _, entry := range env {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		out[key] = value
	}
	return out
}

func envSlice(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k, v := range m {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}

func getEnv(env []string, key string) string {
	return envMap(env)[key]
}
