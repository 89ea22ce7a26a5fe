package logging

import (
	"context"
	"log/slog"

	"pwquick/internal/services"
)

// Standard structured logging keys. The console handler lifts command and
// sink_id into the line header and renders volume as a percentage.
const (
	FieldComponent     = "component"
	FieldCommand       = "command"
	FieldSinkID        = "sink_id"
	FieldCardID        = "card_id"
	FieldVolume        = "volume"
	FieldError         = "error"
	FieldCorrelationID = "correlation_id"
	FieldSessionID     = "session_id"
	// FieldEventType classifies a log line for filtering.
	FieldEventType = "event_type"
	// FieldErrorHint carries the user's next step for a warning or error.
	FieldErrorHint = "error_hint"
	// FieldImpact describes what the user loses because of a warning.
	FieldImpact = "impact"
)

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	var fields []slog.Attr
	if cmd, ok := services.CommandFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldCommand, cmd))
	}
	if id, ok := services.SinkIDFromContext(ctx); ok {
		fields = append(fields, SinkID(id))
	}
	if rid, ok := services.RequestIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldCorrelationID, rid))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	args := make([]any, len(fields))
	for i, field := range fields {
		args[i] = field
	}
	return logger.With(args...)
}
