// Package cli holds the plumbing shared by the oclq and oclc commands.
package cli

import (
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
)

// DefaultLogLevel keeps stderr quiet unless something goes wrong.
const DefaultLogLevel = "warn"

// ParseLevel maps a --log-level value to a slog level. Unknown values
// select the default level.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NewLogger returns a JSON logger writing to w at the given level.
func NewLogger(level string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// AddLogFlags registers --log-level on fs.
func AddLogFlags(fs *pflag.FlagSet, level *string) {
	fs.StringVar(level, "log-level", DefaultLogLevel, "Log level (debug, info, warn, error)")
}
