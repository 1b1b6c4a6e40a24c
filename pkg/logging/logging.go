// Package logging configures log/slog for the bumpsemver command.
//
// Logs are written as text to stderr with the module name and version attached
// to every record. Debug level adds the source location. The level comes from
// the --log-level flag or the LOG_LEVEL environment variable:
//
//	LOG_LEVEL=debug bumpsemver --target-file VERSION
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// ParseLogLevel converts a level name to a slog.Level.
// Unknown or empty names map to slog.LevelInfo.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger returns a text logger writing to w at the given level.
func NewLogger(w io.Writer, module, version, level string) *slog.Logger {
	lvl := ParseLogLevel(level)
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl <= slog.LevelDebug,
	})
	return slog.New(handler).With("module", module, "version", version)
}

// SetDefaultLogger installs a stderr logger as the slog default.
func SetDefaultLogger(module, version, level string) {
	slog.SetDefault(NewLogger(os.Stderr, module, version, level))
}
