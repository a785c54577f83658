// Package logger provides structured logging for the orglite tools.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger provides structured logging functionality.
type Logger struct {
	internal *slog.Logger
	level    *slog.LevelVar
}

// ParseLevel maps a level name to its slog level. ok is false for unknown
// names, in which case info is returned.
func ParseLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// NewLogger creates a logger writing to stderr at the given level.
func NewLogger(level string) *Logger {
	return New(os.Stderr, level)
}

// New creates a logger writing text records to w.
func New(w io.Writer, level string) *Logger {
	lvl := new(slog.LevelVar)
	l, _ := ParseLevel(level)
	lvl.Set(l)

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})

	return &Logger{
		internal: slog.New(handler),
		level:    lvl,
	}
}

// Discard returns a logger that drops every record.
func Discard() *Logger {
	return New(io.Discard, "error")
}

// SetLevel changes the level of l and of every logger derived from it.
func (l *Logger) SetLevel(level string) {
	lvl, _ := ParseLevel(level)
	l.level.Set(lvl)
}

// Enabled reports whether records at level are written.
func (l *Logger) Enabled(level slog.Level) bool {
	return level >= l.level.Level()
}

// Info logs an info level message.
func (l *Logger) Info(msg string, args ...any) {
	l.internal.Info(msg, args...)
}

// Error logs an error level message.
func (l *Logger) Error(msg string, args ...any) {
	l.internal.Error(msg, args...)
}

// Debug logs a debug level message.
func (l *Logger) Debug(msg string, args ...any) {
	l.internal.Debug(msg, args...)
}

// Warn logs a warning level message.
func (l *Logger) Warn(msg string, args ...any) {
	l.internal.Warn(msg, args...)
}

// With creates a child logger with the given attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		internal: l.internal.With(args...),
		level:    l.level,
	}
}
