// Package props reads macro definitions out of MSBuild-style property files.
//
// Only the `<KEY>VALUE<` shape is understood: the first line containing it
// wins and the rest of the file is ignored. Every lookup rescans the input;
// property files are small and consulted a couple of times per process.
package props

import (
	"os"
	"regexp"
	"strings"
)

func keyPattern(key string) *regexp.Regexp {
	return regexp.MustCompile("<" + regexp.QuoteMeta(key) + ">([^<]*)<")
}

// Lookup returns the value defined for key in contents.
func Lookup(contents, key string) (string, bool) {
	re := keyPattern(key)
	for line := range strings.Lines(contents) {
		if m := re.FindStringSubmatch(line); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// LookupFile reads path and looks key up in its contents.
func LookupFile(path, key string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false, err
	}
	value, ok := Lookup(string(data), key)
	return value, ok, nil
}
