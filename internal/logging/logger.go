package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLogLevel overrides the level chosen by the CLI flags.
const EnvLogLevel = "INQUIRE_LOG_LEVEL"

// New creates a configured application logger.
// It writes to Stderr so log lines never interleave with prompts or with
// answers printed on Stdout. It standardizes common keys ("error" -> "err").
func New(level slog.Level) *slog.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Level picks the log level: debug when requested, otherwise warn, unless
// INQUIRE_LOG_LEVEL names one of DEBUG, INFO, WARN, ERROR.
func Level(debug bool) slog.Level {
	switch strings.ToUpper(os.Getenv(EnvLogLevel)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	}
	if debug {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}
