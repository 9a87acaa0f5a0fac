// Package logger holds the process-wide slog logger. The TUI owns the
// terminal, so nothing is written unless Init points it at a file.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

var defaultLogger *slog.Logger

func init() {
	// The TUI owns stdout; stay silent until Init points us somewhere.
	defaultLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps DEBUG/INFO/WARN/ERROR (any case) to a slog level.
// Unknown values mean INFO.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Init replaces the default logger with a text handler writing to w.
func Init(level string, w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	defaultLogger = slog.New(h)
}

// OpenFile opens path for appending, creating parent directories. An empty
// path returns io.Discard and a no-op closer.
func OpenFile(path string) (io.Writer, func() error, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return io.Discard, func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return io.Discard, func() error { return nil }, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return io.Discard, func() error { return nil }, err
	}
	return f, f.Close, nil
}

// Logger returns the default logger instance.
func Logger() *slog.Logger {
	return defaultLogger
}

// SetLogger allows replacing the default logger (for tests or customization).
func SetLogger(l *slog.Logger) {
	defaultLogger = l
}

func Debug(msg string, args ...any) { logAt(slog.LevelDebug, msg, args) }
func Info(msg string, args ...any)  { logAt(slog.LevelInfo, msg, args) }
func Warn(msg string, args ...any)  { logAt(slog.LevelWarn, msg, args) }
func Error(msg string, args ...any) { logAt(slog.LevelError, msg, args) }

func logAt(level slog.Level, msg string, args []any) {
	defaultLogger.Log(context.Background(), level, msg, args...)
}
