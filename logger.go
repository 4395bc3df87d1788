package setcover

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with setcover-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithStrategy adds a strategy field to the logger.
func (l *Logger) WithStrategy(s Strategy) *Logger {
	return &Logger{
		Logger: l.Logger.With("strategy", s.String()),
	}
}

// LogRound logs one round of the greedy loop.
func (l *Logger) LogRound(round, index, gain, remaining int) {
	l.Debug("greedy round",
		"round", round,
		"set", index,
		"gain", gain,
		"remaining", remaining,
	)
}

// LogCover logs a finished cover computation.
func (l *Logger) LogCover(universeSize, numSets, chosen int, elapsed time.Duration, err error) {
	if err != nil {
		l.Error("set cover failed",
			"universe", universeSize,
			"sets", numSets,
			"elapsed", elapsed,
			"error", err,
		)
	} else {
		l.Info("set cover completed",
			"universe", universeSize,
			"sets", numSets,
			"chosen", chosen,
			"elapsed", elapsed,
		)
	}
}
