package logging

import (
	"log/slog"
	"time"
)

type Attr = slog.Attr

func Duration(key string, value time.Duration) Attr { return slog.Duration(key, value) }

func Int(key string, value int) Attr { return slog.Int(key, value) }

func String(key string, value string) Attr { return slog.String(key, value) }

// SinkID tags a record with the PipeWire node id of a sink.
func SinkID(id int) Attr { return slog.Int(FieldSinkID, id) }

// CardID tags a record with the PipeWire device id of a card.
func CardID(id int) Attr { return slog.Int(FieldCardID, id) }

// Volume records a linear volume (1.0 is 100%). The console handler renders
// it as a percentage.
func Volume(linear float64) Attr { return slog.Float64(FieldVolume, linear) }

func Error(err error) Attr {
	if err == nil {
		return slog.String(FieldError, "<nil>")
	}
	return slog.Any(FieldError, err)
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// NewComponentLogger creates a logger with a standardized component attribute.
// If logger is nil, a no-op logger is used as the base.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(String(FieldComponent, component))
}

// WarnWithContext logs a warning that always carries event_type, error_hint,
// and impact. Missing fields are filled with generic values so every warning
// tells the user what happened and what to try next.
func WarnWithContext(logger *slog.Logger, msg, eventType string, attrs ...Attr) {
	if logger == nil {
		return
	}
	present := make(map[string]bool, len(attrs))
	args := make([]any, 0, len(attrs)+3)
	for _, attr := range attrs {
		present[attr.Key] = true
		args = append(args, attr)
	}
	defaults := []Attr{
		String(FieldEventType, eventType),
		String(FieldErrorHint, "rerun with --log-level debug for details"),
		String(FieldImpact, "operation completed with warnings"),
	}
	for _, attr := range defaults {
		if !present[attr.Key] {
			args = append(args, attr)
		}
	}
	logger.Warn(msg, args...)
}
