package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeTools()
	c.normalizeDisplay()
	c.normalizeLogging()
	return c.normalizePaths()
}

func (c *Config) normalizeTools() {
	c.Tools.PwDump = strings.TrimSpace(c.Tools.PwDump)
	if c.Tools.PwDump == "" {
		c.Tools.PwDump = defaultPwDumpBinary
	}
	c.Tools.Wpctl = strings.TrimSpace(c.Tools.Wpctl)
	if c.Tools.Wpctl == "" {
		c.Tools.Wpctl = defaultWpctlBinary
	}
}

func (c *Config) normalizeDisplay() {
	c.Display.Color = strings.ToLower(strings.TrimSpace(c.Display.Color))
	if c.Display.Color == "" {
		c.Display.Color = defaultColorMode
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizePaths() error {
	var err error
	// Tool paths are expanded only when they look like paths; bare names stay
	// on PATH lookup.
	if strings.ContainsRune(c.Tools.PwDump, '/') || strings.HasPrefix(c.Tools.PwDump, "~") {
		if c.Tools.PwDump, err = expandPath(c.Tools.PwDump); err != nil {
			return fmt.Errorf("tools.pw_dump: %w", err)
		}
	}
	if strings.ContainsRune(c.Tools.Wpctl, '/') || strings.HasPrefix(c.Tools.Wpctl, "~") {
		if c.Tools.Wpctl, err = expandPath(c.Tools.Wpctl); err != nil {
			return fmt.Errorf("tools.wpctl: %w", err)
		}
	}
	c.Logging.File = strings.TrimSpace(c.Logging.File)
	if c.Logging.File, err = expandPath(c.Logging.File); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}
