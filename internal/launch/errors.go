package launch

import "fmt"

// UsageError reports malformed arguments or an unusable output directory.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

func usagef(format string, args ...any) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// ConfigError reports a properties file that cannot provide a definition.
type ConfigError struct {
	// What describes the missing definition, e.g. "interpreter definition".
	What string
	Key  string
	File string
	// Empty is set when the definition exists but yields no executable.
	Empty bool
	// Err is set when the file itself could not be read.
	Err error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("read properties %s: %v", e.File, e.Err)
	}
	if e.Empty {
		return fmt.Sprintf("%s %q is empty in %s", e.What, e.Key, e.File)
	}
	return fmt.Sprintf("%s %q not found in %s", e.What, e.Key, e.File)
}

func (e *ConfigError) Unwrap() error { return e.Err }
