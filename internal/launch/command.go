package launch

import (
	"path/filepath"
	"strings"
)

// ResolveScript places a bare script name under scriptsDir. Names starting
// with '.' or the path separator, and the empty (interactive) script, are
// used unchanged.
func ResolveScript(scriptsDir, script string) string {
	if script == "" || script[0] == '.' || script[0] == filepath.Separator {
		return script
	}
	return scriptsDir + string(filepath.Separator) + script
}

// CommandLine joins the command parts with single spaces, skipping empty ones.
// Nothing is quoted.
func CommandLine(exe, flags, script, trailing string) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{exe, flags, script, trailing} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
