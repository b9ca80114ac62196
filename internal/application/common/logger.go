package common

import (
	"context"
	"log"
)

// GameLogger records notable engine events (level-ups, unlocks, mission
// outcomes) for the journal and for operator visibility
type GameLogger interface {
	Log(level, message string, metadata map[string]interface{})
}

// Context keys for passing logger through context
type contextKey int

const (
	loggerKey contextKey = iota
)

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger GameLogger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext extracts the logger from context, or returns a no-op logger if not found
func LoggerFromContext(ctx context.Context) GameLogger {
	if logger, ok := ctx.Value(loggerKey).(GameLogger); ok {
		return logger
	}
	return &noOpLogger{}
}

// noOpLogger is a logger that does nothing (fallback when no logger in context)
type noOpLogger struct{}

func (l *noOpLogger) Log(level, message string, metadata map[string]interface{}) {
	// Do nothing
}

// NopLogger returns a logger that discards everything
func NopLogger() GameLogger {
	return &noOpLogger{}
}

// ConsoleLogger writes events through the standard logger, for CLI use
type ConsoleLogger struct{}

func (l *ConsoleLogger) Log(level, message string, metadata map[string]interface{}) {
	if len(metadata) > 0 {
		log.Printf("[%s] %s %v", level, message, metadata)
		return
	}
	log.Printf("[%s] %s", level, message)
}
