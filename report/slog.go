package report

import (
	"context"
	"log/slog"
)

// LogReporter emits failures as structured error records.
type LogReporter struct {
	logger *slog.Logger
}

// NewLogReporter wraps logger; nil falls back to slog.Default().
func NewLogReporter(logger *slog.Logger) *LogReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogReporter{logger: logger}
}

func (l *LogReporter) Report(ctx context.Context, f Failure) error {
	l.logger.LogAttrs(ctx, slog.LevelError, "render failure",
		slog.String("id", f.ID),
		slog.Time("at", f.At),
		slog.String("scope", f.Scope),
		slog.String("mode", f.Mode),
		slog.String("message", f.Message),
		slog.String("stack", f.Stack),
	)
	return nil
}
