package launch

import (
	"os"
	"path/filepath"
	"strings"
)

// OutputPath is a validated build output directory.
type OutputPath struct {
	// Dir is the run directory joined with the requested output directory.
	Dir string
	// Variant is everything before the last separator of Dir, the build
	// configuration holding the freshly built libraries.
	Variant string
	// Target is the last segment of Dir, upper-cased. It names the property keys.
	Target string
}

// ResolveOutputPath joins token onto runDir, checks the directory exists and
// decomposes it into variant and target.
func ResolveOutputPath(runDir, token string) (OutputPath, error) {
	dir := runDir + string(filepath.Separator) + token
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		return OutputPath{}, usagef("Directory %q doesn't exist", dir)
	}

	variant, target, ok := splitLast(dir, filepath.Separator)
	if !ok {
		return OutputPath{}, usagef("Invalid output directory %q", dir)
	}
	return OutputPath{
		Dir:     dir,
		Variant: variant,
		Target:  strings.ToUpper(target),
	}, nil
}

// splitLast cuts path at its last separator. Both halves must be non-empty.
func splitLast(path string, sep byte) (head, tail string, ok bool) {
	i := strings.LastIndexByte(path, sep)
	if i < 0 {
		return "", "", false
	}
	head, tail = path[:i], path[i+1:]
	if head == "" || tail == "" {
		return "", "", false
	}
	return head, tail, true
}
