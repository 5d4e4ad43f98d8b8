package log

import (
	"context"
	"fmt"
	"log/slog"
)

// SlogLogger implements the 'Logger' interface on top of a standard library structured logger; this is the
// implementation applications should generally reach for.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger returns a logger which forwards to the given structured logger, or 'slog.Default' when <nil>.
func NewSlogLogger(logger *slog.Logger) SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}

	return SlogLogger{logger: logger}
}

func (s SlogLogger) Log(level Level, format string, args ...any) {
	s.logger.Log(context.Background(), level.toSlog(), fmt.Sprintf(format, args...))
}

// toSlog converts the given level into the closest matching slog level; slog has no trace level, so trace statements
// are logged a notch below debug.
func (l Level) toSlog() slog.Level {
	switch l {
	case LevelTrace:
		return slog.LevelDebug - 4
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
