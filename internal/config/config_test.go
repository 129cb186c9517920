package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Properties != "Local.props" {
		t.Fatalf("Properties = %q, want Local.props", cfg.Properties)
	}
	if cfg.DefaultScript != "tests.py" {
		t.Fatalf("DefaultScript = %q, want tests.py", cfg.DefaultScript)
	}
	if cfg.Runner != RunnerNative {
		t.Fatalf("Runner = %q, want %q", cfg.Runner, RunnerNative)
	}
	if got := cfg.Env.DataVar(); got != "LINK_GRAMMAR_DATA" {
		t.Fatalf("DataVar = %q, want LINK_GRAMMAR_DATA", got)
	}
}

func TestLoadOverridesAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	body := `properties = "Build.props"
runner = "Virtual"

[env]
module_path = "LUA_PATH"
no_data = true
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Properties != "Build.props" {
		t.Fatalf("Properties = %q", cfg.Properties)
	}
	if cfg.Runner != RunnerVirtual {
		t.Fatalf("Runner = %q, want lower-cased virtual", cfg.Runner)
	}
	if cfg.Env.ModulePath != "LUA_PATH" || cfg.Env.ExecPath != "PATH" {
		t.Fatalf("Env = %+v", cfg.Env)
	}
	if got := cfg.Env.DataVar(); got != "" {
		t.Fatalf("DataVar = %q, want disabled", got)
	}
	if cfg.ScriptsDir != "../bindings/python-examples" {
		t.Fatalf("ScriptsDir = %q", cfg.ScriptsDir)
	}
}

func TestLoadRejectsUnknownRunner(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(`runner = "docker"`), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrInvalidRunner) {
		t.Fatalf("Load error = %v, want ErrInvalidRunner", err)
	}
}

func TestLoadReportsParseErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(`runner = `), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)
	cfg := Default()
	cfg.DefaultScript = "example.py"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got.DefaultScript != "example.py" {
		t.Fatalf("DefaultScript = %q, want example.py", got.DefaultScript)
	}
}

func TestUnder(t *testing.T) {
	sep := string(filepath.Separator)
	got := Under("run", "../bindings/python")
	want := "run" + sep + ".." + sep + "bindings" + sep + "python"
	if got != want {
		t.Fatalf("Under = %q, want %q", got, want)
	}
	abs := filepath.Join(t.TempDir(), "x")
	if got := Under("run", filepath.ToSlash(abs)); got != abs {
		t.Fatalf("Under(abs) = %q, want %q", got, abs)
	}
}
