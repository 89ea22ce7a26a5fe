// Package pipewire mediates access to the PipeWire command-line tools: pw-dump
// for reading the object graph and wpctl for changing defaults, profiles,
// volume and mute.
//
// Every call is a fresh process invocation; nothing is cached between calls.
// Mutations address objects by the ids of whatever snapshot the caller holds
// and are not revalidated, so an id that disappeared in the meantime surfaces
// as an ErrExternalTool failure from wpctl.
//
// Prefer this package over ad-hoc exec.Command usage so timeouts, error
// classification and logging stay consistent across commands.
package pipewire
