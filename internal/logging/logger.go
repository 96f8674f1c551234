// Package logging configures the slog text logger shared by the
// pursue-tools binaries. Diagnostics go to standard error so they never
// mix with a command's report on standard output or with the MCP stream.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is a *slog.Logger with helpers for the attributes the tools add.
type Logger struct {
	*slog.Logger
}

// NewLogger logs to standard error at level.
func NewLogger(level string) *Logger {
	return NewLoggerTo(os.Stderr, level)
}

// NewLoggerTo logs text records to w at level.
func NewLoggerTo(w io.Writer, level string) *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})),
	}
}

// Discard returns a logger that drops every record.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// ParseLevel maps debug, info, warn (or warning) and error to a slog
// level, ignoring case. Anything else is info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// LevelFromEnv returns $LOG_LEVEL, or fallback when it is unset.
func LevelFromEnv(fallback string) string {
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		return level
	}
	return fallback
}

// WithTool tags records with the tool or command name.
func (l *Logger) WithTool(toolName string) *Logger {
	return &Logger{Logger: l.With(slog.String("tool", toolName))}
}

// WithFile tags records with the file being processed.
func (l *Logger) WithFile(path string) *Logger {
	return &Logger{Logger: l.With(slog.String("file", path))}
}
