package testsupport

import (
	"path/filepath"
	"testing"

	"pwquick/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a default config whose tools point at binaries that do
// not exist, so nothing in a test reaches a real PipeWire server by accident.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfgVal := config.Default()
	cfgVal.Tools.PwDump = "pwquick-test-missing-pw-dump"
	cfgVal.Tools.Wpctl = "pwquick-test-missing-wpctl"
	cfgVal.Display.Color = config.ColorNever

	builder := &configBuilder{
		t:       t,
		baseDir: t.TempDir(),
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithStubbedTools writes succeeding pw-dump and wpctl stubs and points the
// config at them.
func WithStubbedTools() ConfigOption {
	return func(b *configBuilder) {
		binDir := filepath.Join(b.baseDir, "bin")
		b.cfg.Tools.PwDump = StubBinary(b.t, binDir, "pw-dump")
		b.cfg.Tools.Wpctl = StubBinary(b.t, binDir, "wpctl")
	}
}

// WithLogLevel overrides logging.level.
func WithLogLevel(level string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Level = level
	}
}
