// Package config loads, normalizes, and validates pwquick configuration data.
//
// It supplies repository defaults, resolves the XDG config location, reads
// TOML files, and applies PWQUICK_* environment overrides on top. The Config
// type centralizes every knob the CLI needs so tool paths, timeouts, and
// display preferences are discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized values and clear validation errors.
package config
