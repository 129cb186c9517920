package cli

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

const envLogLevel = "BUILDRUN_LOG_LEVEL"

func newLogger(w io.Writer) *log.Logger {
	level := log.WarnLevel
	if raw := strings.TrimSpace(os.Getenv(envLogLevel)); raw != "" {
		if parsed, err := log.ParseLevel(raw); err == nil {
			level = parsed
		}
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "buildrun",
		Level:  level,
	})
}
