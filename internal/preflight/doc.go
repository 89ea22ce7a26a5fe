// Package preflight provides readiness checks for the PipeWire tools and
// session that pwquick depends on.
//
// The CLI "pwquick doctor" command runs RunAll and renders each Result; the
// individual checks are exported so other commands can reuse them when a
// failure needs explaining.
package preflight
