package services

import "context"

type contextKey string

const (
	commandKey   contextKey = "command"
	sinkIDKey    contextKey = "sink_id"
	requestIDKey contextKey = "request_id"
)

// WithCommand annotates context with the CLI command being served.
func WithCommand(ctx context.Context, command string) context.Context {
	if command == "" {
		return ctx
	}
	return context.WithValue(ctx, commandKey, command)
}

// CommandFromContext returns the command name if present.
func CommandFromContext(ctx context.Context) (string, bool) {
	if str, ok := ctx.Value(commandKey).(string); ok && str != "" {
		return str, true
	}
	return "", false
}

// WithSinkID annotates context with the sink a mutation targets.
func WithSinkID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, sinkIDKey, id)
}

// SinkIDFromContext extracts the targeted sink id if present.
func SinkIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(sinkIDKey).(int)
	return id, ok
}

// WithRequestID annotates context with a correlation identifier.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the correlation identifier if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(requestIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
