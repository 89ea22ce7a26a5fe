// Package logging builds the slog loggers pwquick commands write to.
//
// Records go to stderr in a compact console layout (or JSON with
// logging.format = "json") so tables and --json output on stdout stay
// machine-readable. An optional logging.file receives a debug-level JSON copy
// of everything. Helpers tag records with the command, the sink or card being
// changed, and the per-invocation session id.
package logging
