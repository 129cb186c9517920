package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// FileName is the optional configuration file looked up in the run directory.
const FileName = "buildrun.toml"

const (
	RunnerNative  = "native"
	RunnerVirtual = "virtual"
)

// Config captures the user editable settings stored in buildrun.toml.
// Relative locations are slash-separated and resolved against the run directory.
type Config struct {
	Properties    string   `toml:"properties"`
	ScriptsDir    string   `toml:"scripts_dir"`
	DefaultScript string   `toml:"default_script"`
	BindingsDir   string   `toml:"bindings_dir"`
	DataDir       string   `toml:"data_dir"`
	Runner        string   `toml:"runner"`
	Shell         string   `toml:"shell"`
	Env           EnvBlock `toml:"env"`
}

// EnvBlock names the variables exported to the launched interpreter.
type EnvBlock struct {
	ExecPath   string `toml:"exec_path"`
	ModulePath string `toml:"module_path"`
	Data       string `toml:"data"`
	NoData     bool   `toml:"no_data"`
}

// DataVar reports the data directory variable; empty when disabled.
func (e EnvBlock) DataVar() string {
	if e.NoData {
		return ""
	}
	return e.Data
}

func (e *EnvBlock) applyDefaults() {
	if e.ExecPath == "" {
		e.ExecPath = "PATH"
	}
	if e.ModulePath == "" {
		e.ModulePath = "PYTHONPATH"
	}
	if e.Data == "" {
		e.Data = "LINK_GRAMMAR_DATA"
	}
}

var (
	// ErrMissingProperties indicates the properties file name was blanked out.
	ErrMissingProperties = errors.New("config.properties must be set")
	// ErrInvalidRunner indicates the runner is not recognized.
	ErrInvalidRunner = errors.New("config.runner must be native or virtual")
	// ErrMissingEnvName indicates an exported variable name is empty.
	ErrMissingEnvName = errors.New("config.env.exec_path and config.env.module_path must not be empty")
)

// Default returns the layout of an msvc build directory next to bindings/.
func Default() Config {
	cfg := Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Properties == "" {
		c.Properties = "Local.props"
	}
	if c.ScriptsDir == "" {
		c.ScriptsDir = "../bindings/python-examples"
	}
	if c.DefaultScript == "" {
		c.DefaultScript = "tests.py"
	}
	if c.BindingsDir == "" {
		c.BindingsDir = "../bindings/python"
	}
	if c.DataDir == "" {
		c.DataDir = ".."
	}
	if c.Runner == "" {
		c.Runner = RunnerNative
	} else {
		c.Runner = strings.ToLower(c.Runner)
	}
	if c.Shell == "" {
		c.Shell = "/bin/sh"
	}
	c.Env.applyDefaults()
}

// Validate ensures the configuration can drive a launch.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Properties) == "" {
		return ErrMissingProperties
	}
	switch c.Runner {
	case RunnerNative, RunnerVirtual:
	default:
		return ErrInvalidRunner
	}
	if strings.TrimSpace(c.Env.ExecPath) == "" || strings.TrimSpace(c.Env.ModulePath) == "" {
		return ErrMissingEnvName
	}
	return nil
}

// PropertiesPath locates the properties file under runDir.
func (c Config) PropertiesPath(runDir string) string {
	return Under(runDir, c.Properties)
}

// ScriptsPath locates the directory bare script names are resolved in.
func (c Config) ScriptsPath(runDir string) string {
	return Under(runDir, c.ScriptsDir)
}

// BindingsPath locates the shared bindings placed first on the module path.
func (c Config) BindingsPath(runDir string) string {
	return Under(runDir, c.BindingsDir)
}

// DataPath locates the directory exported through Env.DataVar.
func (c Config) DataPath(runDir string) string {
	return Under(runDir, c.DataDir)
}

// Under joins a slash-separated location onto runDir with the host separator.
// Absolute locations are returned as is.
func Under(runDir, rel string) string {
	rel = filepath.FromSlash(rel)
	if filepath.IsAbs(rel) {
		return rel
	}
	return runDir + string(filepath.Separator) + rel
}

// Load reads configuration from disk. Missing files return a default config.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Save writes configuration to disk, creating parent directories as needed.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
