package logging

import (
	"context"
	"log/slog"
)

// NoisySubsystems lists helper subsystems whose debug output drowns the
// console during normal runs. Their loggers are clamped to info at
// bootstrap; a chatty dependency cannot lower that from config.
var NoisySubsystems = []string{"imaging", "plotting"}

// Subsystem returns a child logger tagged with the subsystem name.
func Subsystem(logger *slog.Logger, name string) *slog.Logger {
	if logger == nil {
		return NewNop()
	}
	return logger.With("subsystem", name)
}

// Quiet returns a subsystem logger that never emits below info, regardless
// of the global level.
func Quiet(logger *slog.Logger, name string) *slog.Logger {
	return WithMinLevel(Subsystem(logger, name), slog.LevelInfo)
}

// WithMinLevel returns a logger enforcing the provided minimum level while
// preserving existing attributes and handler wiring.
func WithMinLevel(logger *slog.Logger, level slog.Level) *slog.Logger {
	if logger == nil {
		return slog.New(newMinLevelHandler(nil, level))
	}
	if cloner, ok := logger.Handler().(interface{ CloneWithLevel(slog.Level) slog.Handler }); ok {
		return slog.New(cloner.CloneWithLevel(level))
	}
	return slog.New(newMinLevelHandler(logger.Handler(), level))
}

// minLevelHandler enforces a per-logger minimum level while delegating
// output to the wrapped handler.
type minLevelHandler struct {
	next  slog.Handler
	level slog.Level
}

func newMinLevelHandler(next slog.Handler, level slog.Level) slog.Handler {
	if next == nil {
		return nopHandler{}
	}
	return &minLevelHandler{next: next, level: level}
}

func (h *minLevelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if level < h.level {
		return false
	}
	return h.next.Enabled(ctx, level)
}

func (h *minLevelHandler) Handle(ctx context.Context, record slog.Record) error {
	if record.Level < h.level {
		return nil
	}
	return h.next.Handle(ctx, record)
}

func (h *minLevelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &minLevelHandler{next: h.next.WithAttrs(attrs), level: h.level}
}

func (h *minLevelHandler) WithGroup(name string) slog.Handler {
	return &minLevelHandler{next: h.next.WithGroup(name), level: h.level}
}

func (h *minLevelHandler) CloneWithLevel(level slog.Level) slog.Handler {
	return &minLevelHandler{next: h.next, level: level}
}
