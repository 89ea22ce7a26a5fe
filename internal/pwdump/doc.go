// Package pwdump provides an optional-safe view over the JSON graph dump
// emitted by pw-dump.
//
// The dump is an array of heterogeneous objects (nodes, devices, metadata,
// ports, clients, ...) whose nested property bags vary per object kind and per
// PipeWire version. Nothing in it is guaranteed to be present, so every read
// goes through Value, whose accessors report absence instead of panicking:
//
//	class, ok := obj.Props().Get("media.class").String()
//
// Key types:
//   - Value: accessor over one node of the decoded JSON tree
//   - Object: one graph element with kind, id, props and params helpers
//   - Dump: the ordered sequence of objects from a single pw-dump run
//
// Numeric coercion lives in AsInt and AsFloat; callers should not hand-roll
// their own conversions.
package pwdump
