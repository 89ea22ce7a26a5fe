// Package services defines shared utilities consumed by the PipeWire tool
// wrappers and the CLI commands built on them.
//
// Key responsibilities:
//   - Context helpers that stamp command names, target sink ids, and
//     correlation identifiers for logging.
//   - Structured error markers plus the Wrap helper that classify failures
//     into exit codes and operator hints.
//
// Use these helpers when wiring new tool integrations so error handling and
// observability stay uniform across commands.
package services
