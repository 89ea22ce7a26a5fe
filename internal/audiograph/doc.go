// Package audiograph derives a normalized, query-able view of audio outputs
// from a pw-dump graph.
//
// It owns the sink, card and profile records and the rules that produce them:
// which nodes count as sinks, how multi-channel volume is aggregated, how the
// default sink is resolved from metadata, and which device profiles are
// selectable. Every extractor is fail-soft: a malformed element is skipped or
// degraded to unknown fields, never reported as an error.
//
// Build composes the extractors into an immutable Snapshot. A Snapshot is a
// pure function of one dump; callers build a new one for every query instead
// of refreshing an old one.
package audiograph
