package launch

import "strings"

// Request is the command line split into its positional slots.
type Request struct {
	// FlagString is passed verbatim to the interpreter.
	FlagString string
	// OutputDir is relative to the run directory, e.g. x64/Debug/Python3.
	OutputDir string
	// Script is empty for an interactive session.
	Script   string
	Trailing []string
}

// ParseArgs splits args (program name excluded) into a Request. A script is
// only taken when exactly one token follows the output directory; with more,
// every remaining token is passed through and defaultScript is kept.
func ParseArgs(args []string, defaultScript string) (Request, error) {
	rest := append([]string(nil), args...)
	req := Request{Script: defaultScript}

	if len(rest) < 1 {
		return Request{}, usagef("Missing argument")
	}
	if isFlag(rest[0]) {
		req.FlagString, rest = rest[0], rest[1:]
	}

	if len(rest) < 1 {
		return Request{}, usagef("Missing argument")
	}
	req.OutputDir, rest = rest[0], rest[1:]

	if len(rest) == 1 && !isFlag(rest[0]) {
		req.Script, rest = rest[0], rest[1:]
	}

	if len(rest) > 0 {
		req.Trailing = rest
	}
	return req, nil
}

// TrailingString joins the pass-through arguments with single spaces.
func (r Request) TrailingString() string {
	return strings.Join(r.Trailing, " ")
}

func isFlag(tok string) bool {
	return strings.HasPrefix(tok, "-")
}
