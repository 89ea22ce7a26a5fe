package logging

import (
	"context"
	"log/slog"
)

// scopedHandler optionally raises the minimum level of the handler it wraps
// and appends fixed attributes to every record it forwards. The trailing
// attributes are added at Handle time so they land after command-specific
// fields in the output.
type scopedHandler struct {
	next     slog.Handler
	floor    slog.Level
	hasFloor bool
	trailing []slog.Attr
}

func withTrailingAttrs(next slog.Handler, attrs ...slog.Attr) slog.Handler {
	if next == nil {
		return slog.DiscardHandler
	}
	if scoped, ok := next.(*scopedHandler); ok {
		clone := *scoped
		clone.trailing = append(append([]slog.Attr(nil), scoped.trailing...), attrs...)
		return &clone
	}
	return &scopedHandler{next: next, trailing: attrs}
}

func withFloor(next slog.Handler, level slog.Level) slog.Handler {
	if next == nil {
		return slog.DiscardHandler
	}
	if scoped, ok := next.(*scopedHandler); ok {
		clone := *scoped
		clone.floor = level
		clone.hasFloor = true
		return &clone
	}
	return &scopedHandler{next: next, floor: level, hasFloor: true}
}

func (h *scopedHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if h.hasFloor && level < h.floor {
		return false
	}
	return h.next.Enabled(ctx, level)
}

func (h *scopedHandler) Handle(ctx context.Context, record slog.Record) error {
	if h.hasFloor && record.Level < h.floor {
		return nil
	}
	if len(h.trailing) > 0 {
		record = record.Clone()
		record.AddAttrs(h.trailing...)
	}
	return h.next.Handle(ctx, record)
}

func (h *scopedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.next = h.next.WithAttrs(attrs)
	return &clone
}

func (h *scopedHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.next = h.next.WithGroup(name)
	return &clone
}

// WithLevelOverride returns a logger that drops records below level while
// keeping the attributes and outputs of logger. The menu uses it so info
// chatter does not interleave with prompts.
func WithLevelOverride(logger *slog.Logger, level slog.Level) *slog.Logger {
	if logger == nil {
		return NewNop()
	}
	return slog.New(withFloor(logger.Handler(), level))
}

// teeHandler sends each record to every member that accepts its level.
type teeHandler []slog.Handler

func teeHandlers(handlers ...slog.Handler) slog.Handler {
	var members teeHandler
	for _, h := range handlers {
		if h != nil {
			members = append(members, h)
		}
	}
	switch len(members) {
	case 0:
		return slog.DiscardHandler
	case 1:
		return members[0]
	}
	return members
}

func (t teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (t teeHandler) Handle(ctx context.Context, record slog.Record) error {
	var firstErr error
	for _, h := range t {
		if !h.Enabled(ctx, record.Level) {
			continue
		}
		if err := h.Handle(ctx, record.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (t teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(teeHandler, len(t))
	for i, h := range t {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (t teeHandler) WithGroup(name string) slog.Handler {
	out := make(teeHandler, len(t))
	for i, h := range t {
		out[i] = h.WithGroup(name)
	}
	return out
}
