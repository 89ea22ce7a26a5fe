package config

import (
	"errors"
	"fmt"
)

// maxVolumeLimit mirrors the highest volume wpctl is asked to reach.
const maxVolumeLimit = 1.5

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTools(); err != nil {
		return err
	}
	if err := c.validateVolume(); err != nil {
		return err
	}
	if err := c.validateDisplay(); err != nil {
		return err
	}
	if err := c.validateWatch(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateTools() error {
	if c.Tools.TimeoutSeconds < 0 {
		return errors.New("tools.timeout_seconds must be zero (no limit) or positive")
	}
	return nil
}

func (c *Config) validateVolume() error {
	if c.Volume.Limit <= 0 || c.Volume.Limit > maxVolumeLimit {
		return fmt.Errorf("volume.limit must be in (0, %.1f]", maxVolumeLimit)
	}
	if c.Volume.Step <= 0 || c.Volume.Step > c.Volume.Limit {
		return errors.New("volume.step must be positive and no larger than volume.limit")
	}
	return nil
}

func (c *Config) validateDisplay() error {
	switch c.Display.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("display.color: unsupported value %q (want auto, always or never)", c.Display.Color)
	}
}

func (c *Config) validateWatch() error {
	if c.Watch.DebounceMS < 0 {
		return errors.New("watch.debounce_ms must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
