package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Tools names the PipeWire command-line tools and bounds each invocation.
type Tools struct {
	PwDump         string `toml:"pw_dump" json:"pw_dump" env:"PW_DUMP"`
	Wpctl          string `toml:"wpctl" json:"wpctl" env:"WPCTL"`
	TimeoutSeconds int    `toml:"timeout_seconds" json:"timeout_seconds" env:"TIMEOUT_SECONDS"`
}

// Volume contains defaults for volume changes.
type Volume struct {
	// Limit caps relative increases, as a linear fraction (1.0 = 100%).
	Limit float64 `toml:"limit" json:"limit" env:"LIMIT"`
	// Step is the size of one up/down nudge in the interactive menu.
	Step float64 `toml:"step" json:"step" env:"STEP"`
}

// Display contains presentation settings for tables and prompts.
type Display struct {
	ShowUnavailableProfiles bool   `toml:"show_unavailable_profiles" json:"show_unavailable_profiles" env:"SHOW_UNAVAILABLE_PROFILES"`
	Color                   string `toml:"color" json:"color" env:"COLOR"`
}

// Watch contains settings for the hotplug watcher.
type Watch struct {
	DebounceMS int `toml:"debounce_ms" json:"debounce_ms" env:"DEBOUNCE_MS"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format" json:"format" env:"FORMAT"`
	Level  string `toml:"level" json:"level" env:"LEVEL"`
	// File optionally receives a JSON debug log in addition to stderr.
	File string `toml:"file" json:"file" env:"FILE"`
}

// Config encapsulates all configuration values for pwquick.
//
// Configuration sections:
//   - Tools: pw-dump/wpctl binaries and the per-call timeout
//   - Volume: increase limit and interactive step size
//   - Display: profile filtering and color mode
//   - Watch: hotplug debounce window
//   - Logging: log format, level, and optional file
//
// Every key can be overridden from the environment with the PWQUICK_ prefix,
// e.g. PWQUICK_TOOLS_WPCTL or PWQUICK_LOGGING_LEVEL.
type Config struct {
	Tools   Tools   `toml:"tools" json:"tools" envPrefix:"TOOLS_"`
	Volume  Volume  `toml:"volume" json:"volume" envPrefix:"VOLUME_"`
	Display Display `toml:"display" json:"display" envPrefix:"DISPLAY_"`
	Watch   Watch   `toml:"watch" json:"watch" envPrefix:"WATCH_"`
	Logging Logging `toml:"logging" json:"logging" envPrefix:"LOGGING_"`
}

const (
	appName         = "pwquick"
	configFileName  = "config.toml"
	projectFileName = "pwquick.toml"
	envPrefix       = "PWQUICK_"
)

// Load locates, parses, and validates a configuration file. The returned
// config has environment overrides applied and all fields normalized.
// exists reports whether a file was read; when it is false the returned
// path is where `pwquick config init` would write one.
func Load(path string) (cfg *Config, resolved string, exists bool, err error) {
	loaded := Default()

	resolved, exists, err = locate(path)
	if err != nil {
		return nil, "", false, err
	}
	if exists {
		if err := loaded.decodeFile(resolved); err != nil {
			return nil, "", false, err
		}
	}
	if err := env.ParseWithOptions(&loaded, env.Options{Prefix: envPrefix}); err != nil {
		return nil, "", false, fmt.Errorf("environment overrides: %w", err)
	}
	if err := loaded.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := loaded.Validate(); err != nil {
		return nil, "", false, err
	}
	return &loaded, resolved, exists, nil
}

func (c *Config) decodeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return fmt.Errorf("parse config %s:%d:%d: %w", path, row, col, err)
		}
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Encode renders the effective configuration as TOML.
func (c *Config) Encode() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}

// RuntimeFile returns a path under $XDG_RUNTIME_DIR/pwquick, creating the
// directory when needed.
func RuntimeFile(name string) (string, error) {
	path, err := xdg.RuntimeFile(filepath.Join(appName, name))
	if err != nil {
		return "", fmt.Errorf("resolve runtime file %q: %w", name, err)
	}
	return path, nil
}

// CreateSample writes a sample configuration file to the specified location.
// An existing file is left untouched unless overwrite is set.
func CreateSample(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists at %s", path)
		}
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
