package common

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
)

// Logger provides leveled logging for request handlers
type Logger interface {
	Log(level, message string, metadata map[string]interface{})
}

// Context keys for passing logger through context
type contextKey int

const (
	loggerKey contextKey = iota
)

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext extracts the logger from context, or returns a no-op logger if not found
func LoggerFromContext(ctx context.Context) Logger {
	if logger, ok := ctx.Value(loggerKey).(Logger); ok {
		return logger
	}
	return &noOpLogger{}
}

// noOpLogger is a logger that does nothing (fallback when no logger in context)
type noOpLogger struct{}

func (l *noOpLogger) Log(level, message string, metadata map[string]interface{}) {
	// Do nothing
}

var levels = map[string]slog.Level{
	"DEBUG":   slog.LevelDebug,
	"INFO":    slog.LevelInfo,
	"WARNING": slog.LevelWarn,
	"WARN":    slog.LevelWarn,
	"ERROR":   slog.LevelError,
}

// StdLogger adapts a slog.Logger to the Logger interface, writing either
// key=value text or one JSON object per line
type StdLogger struct {
	logger *slog.Logger
}

// NewStdLogger creates a logger writing to w. level is one of DEBUG, INFO,
// WARNING, ERROR (case-insensitive); format is "json" or "text".
func NewStdLogger(w io.Writer, level, format string) (*StdLogger, error) {
	minLevel, ok := levels[strings.ToUpper(level)]
	if !ok {
		return nil, fmt.Errorf("unknown log level %q", level)
	}

	opts := &slog.HandlerOptions{Level: minLevel}
	var handler slog.Handler
	switch strings.ToLower(format) {
	case "", "text":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	return &StdLogger{logger: slog.New(handler)}, nil
}

// Log implements Logger. Unknown levels are logged as INFO; metadata keys are
// written in sorted order.
func (l *StdLogger) Log(level, message string, metadata map[string]interface{}) {
	lvl, ok := levels[strings.ToUpper(level)]
	if !ok {
		lvl = slog.LevelInfo
	}

	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, metadata[k]))
	}
	l.logger.LogAttrs(context.Background(), lvl, message, attrs...)
}
