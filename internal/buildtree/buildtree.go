package buildtree

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/brandonbloom/buildrun/internal/config"
)

// EnvRunDir overrides run directory discovery.
const EnvRunDir = "BUILDRUN_RUNDIR"

var (
	// ErrRunDirMissing indicates the run directory does not exist.
	ErrRunDirMissing = errors.New("run directory does not exist")
)

// Tree is the launcher's run directory together with its configuration.
type Tree struct {
	RunDir     string
	ConfigPath string
	Config     config.Config
}

// Discover picks the run directory: $BUILDRUN_RUNDIR, else the nearest
// ancestor of start holding buildrun.toml, else the directory of exe.
func Discover(start, exe string) (*Tree, error) {
	if dir := strings.TrimSpace(os.Getenv(EnvRunDir)); dir != "" {
		return Load(dir)
	}
	if dir, ok := locateConfig(start); ok {
		return Load(dir)
	}
	dir, err := executableDir(exe)
	if err != nil {
		return nil, err
	}
	return Load(dir)
}

// FromWD discovers the tree relative to the working directory and this executable.
func FromWD() (*Tree, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	exe, err := os.Executable()
	if err != nil {
		return nil, err
	}
	return Discover(wd, exe)
}

// Load constructs a Tree from a known run directory.
func Load(runDir string) (*Tree, error) {
	runDir = filepath.Clean(runDir)
	if !isDir(runDir) {
		return nil, &os.PathError{Op: "open", Path: runDir, Err: ErrRunDirMissing}
	}

	cfgPath := filepath.Join(runDir, config.FileName)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	return &Tree{
		RunDir:     runDir,
		ConfigPath: cfgPath,
		Config:     cfg,
	}, nil
}

// HasConfig reports whether the run directory carries its own buildrun.toml.
func (t *Tree) HasConfig() bool {
	_, err := os.Stat(t.ConfigPath)
	return err == nil
}

func locateConfig(start string) (string, bool) {
	if start == "" {
		return "", false
	}
	cur, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}
	for {
		if isFile(filepath.Join(cur, config.FileName)) {
			return cur, true
		}
		next := filepath.Dir(cur)
		if next == cur {
			return "", false
		}
		cur = next
	}
}

func executableDir(exe string) (string, error) {
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", err
	}
	return filepath.Dir(resolved), nil
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.IsDir()
}

func isFile(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.Mode().IsRegular()
}
