package launch

import (
	"strings"

	"github.com/brandonbloom/buildrun/internal/props"
)

// ExeSuffix turns a target key into the key of its executable template.
const ExeSuffix = "_EXE"

const exeDefinition = "interpreter executable definition"

// Interpreter is the executable resolved for a target.
type Interpreter struct {
	Target     string
	Location   string
	Template   string
	Executable string
}

// ResolveInterpreter reads the install location and executable template for
// target from propsPath and substitutes one into the other. An empty location
// is allowed; an executable that comes out blank is not.
func ResolveInterpreter(propsPath, target string) (Interpreter, error) {
	loc, err := lookupDefinition(propsPath, target, "interpreter definition")
	if err != nil {
		return Interpreter{}, err
	}
	exeKey := target + ExeSuffix
	tmpl, err := lookupDefinition(propsPath, exeKey, exeDefinition)
	if err != nil {
		return Interpreter{}, err
	}
	exe := Substitute(tmpl, target, loc)
	if strings.TrimSpace(exe) == "" {
		return Interpreter{}, &ConfigError{What: exeDefinition, Key: exeKey, File: propsPath, Empty: true}
	}
	return Interpreter{
		Target:     target,
		Location:   loc,
		Template:   tmpl,
		Executable: exe,
	}, nil
}

func lookupDefinition(path, key, what string) (string, error) {
	value, ok, err := props.LookupFile(path, key)
	if err != nil {
		return "", &ConfigError{What: what, Key: key, File: path, Err: err}
	}
	if !ok {
		return "", &ConfigError{What: what, Key: key, File: path}
	}
	return value, nil
}
