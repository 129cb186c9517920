package launch

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/brandonbloom/buildrun/internal/config"
)

func TestSubstitute(t *testing.T) {
	cases := []struct {
		name, tmpl, want string
	}{
		{name: "single", tmpl: `$(PY2)\python.exe`, want: `C:\Python2\python.exe`},
		{name: "repeated", tmpl: `$(PY2)\$(PY2)`, want: `C:\Python2\C:\Python2`},
		{name: "other placeholders survive", tmpl: `$(PY2)\$(Platform)\python.exe`, want: `C:\Python2\$(Platform)\python.exe`},
		{name: "no placeholder", tmpl: `python`, want: `python`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Substitute(tc.tmpl, "PY2", `C:\Python2`); got != tc.want {
				t.Fatalf("Substitute = %q, want %q", got, tc.want)
			}
		})
	}
}

func testOutput() (string, OutputPath) {
	sep := string(filepath.Separator)
	runDir := sep + "src" + sep + "msvc"
	return runDir, OutputPath{
		Dir:     runDir + sep + "x64" + sep + "Debug" + sep + "PY3",
		Variant: runDir + sep + "x64" + sep + "Debug",
		Target:  "PY3",
	}
}

func TestComposeEnvironment(t *testing.T) {
	list := string(os.PathListSeparator)
	runDir, out := testOutput()
	cfg := config.Default()

	env := ComposeEnvironment(cfg, runDir, out, []string{"PATH=/usr/bin", "HOME=/home/dev"})

	if want := out.Variant + list + "/usr/bin"; env.ExecPath != want {
		t.Fatalf("ExecPath = %q, want %q", env.ExecPath, want)
	}
	if want := cfg.BindingsPath(runDir) + list + out.Dir; env.ModulePath != want {
		t.Fatalf("ModulePath = %q, want %q", env.ModulePath, want)
	}
	if env.DataVar != "LINK_GRAMMAR_DATA" || env.DataDir != cfg.DataPath(runDir) {
		t.Fatalf("data = %s=%s", env.DataVar, env.DataDir)
	}
}

func TestComposeEnvironmentWithoutInheritedPath(t *testing.T) {
	runDir, out := testOutput()
	cfg := config.Default()
	cfg.Env.NoData = true

	env := ComposeEnvironment(cfg, runDir, out, nil)
	if env.ExecPath != out.Variant {
		t.Fatalf("ExecPath = %q, want %q", env.ExecPath, out.Variant)
	}
	if env.DataVar != "" {
		t.Fatalf("DataVar = %q, want disabled", env.DataVar)
	}
	if got := len(env.Overrides()); got != 2 {
		t.Fatalf("len(Overrides) = %d, want 2", got)
	}
}

func TestApplyOverlaysWithoutTouchingInput(t *testing.T) {
	inherited := []string{"PYTHONPATH=/old", "PATH=/usr/bin", "HOME=/home/dev", "MALFORMED"}
	snapshot := append([]string(nil), inherited...)
	env := Environment{
		ExecPathVar:   "PATH",
		ExecPath:      "/build:/usr/bin",
		ModulePathVar: "PYTHONPATH",
		ModulePath:    "/bindings:/build/PY3",
	}

	got := env.Apply(inherited)
	want := []string{"HOME=/home/dev", "PATH=/build:/usr/bin", "PYTHONPATH=/bindings:/build/PY3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Apply = %q, want %q", got, want)
	}
	if !reflect.DeepEqual(inherited, snapshot) {
		t.Fatalf("inherited environment modified: %q", inherited)
	}
	if again := env.Apply(inherited); strings.Join(again, "\n") != strings.Join(got, "\n") {
		t.Fatalf("Apply is not deterministic: %q vs %q", again, got)
	}
}

func TestResolveScript(t *testing.T) {
	sep := string(filepath.Separator)
	scripts := sep + "src" + sep + "bindings" + sep + "python-examples"
	cases := []struct {
		name, script, want string
	}{
		{name: "bare name", script: "foo.py", want: scripts + sep + "foo.py"},
		{name: "relative", script: "." + sep + "foo.py", want: "." + sep + "foo.py"},
		{name: "absolute", script: sep + "abs" + sep + "foo.py", want: sep + "abs" + sep + "foo.py"},
		{name: "interactive", script: "", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveScript(scripts, tc.script); got != tc.want {
				t.Fatalf("ResolveScript(%q) = %q, want %q", tc.script, got, tc.want)
			}
		})
	}
}

func TestCommandLine(t *testing.T) {
	cases := []struct {
		name                         string
		exe, flags, script, trailing string
		want                         string
	}{
		{name: "full", exe: "python", flags: "-O", script: "t.py", trailing: "a b", want: "python -O t.py a b"},
		{name: "interactive keeps flags", exe: "python", flags: "-i", want: "python -i"},
		{name: "interactive with trailing", exe: "python", flags: "-X dev", trailing: "-v", want: "python -X dev -v"},
		{name: "exe only", exe: "python", want: "python"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CommandLine(tc.exe, tc.flags, tc.script, tc.trailing); got != tc.want {
				t.Fatalf("CommandLine = %q, want %q", got, tc.want)
			}
		})
	}
}
