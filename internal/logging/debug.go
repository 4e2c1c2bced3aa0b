package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Options configures the diagnostics loggers.
type Options struct {
	Debug  bool
	Level  string
	Output io.Writer
}

var (
	configured  bool
	debugForced bool
	logger      = newLogger(os.Stderr, log.InfoLevel)
	debugLogger = newLogger(os.Stderr, log.DebugLevel)
)

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "todo",
		ReportTimestamp: true,
		TimeFormat:      ActivityTimeFormat,
	})
}

// Configure applies options to the package loggers. An empty level keeps the
// current one.
func Configure(opts Options) error {
	if opts.Level != "" {
		level, err := log.ParseLevel(opts.Level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		logger.SetLevel(level)
	}
	if opts.Output != nil {
		logger.SetOutput(opts.Output)
		debugLogger.SetOutput(opts.Output)
	}
	debugForced = opts.Debug
	configured = true
	return nil
}

// Logger returns the leveled diagnostics logger.
func Logger() *log.Logger {
	return logger
}

// DebugEnabled returns true if debug mode is enabled via configuration, or
// before Configure runs, via the TODO_DEBUG environment variable
func DebugEnabled() bool {
	if configured {
		return debugForced
	}
	return os.Getenv("TODO_DEBUG") != ""
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		debugLogger.Debugf(format, args...)
	}
}

// Debugln prints a debug message only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		debugLogger.Debug(fmt.Sprint(args...))
	}
}
