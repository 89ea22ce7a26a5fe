package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"pwquick/internal/config"
)

// isolateXDG points every XDG base directory at a temp tree and reloads xdg.
func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(root, "etc"))
	t.Setenv("XDG_RUNTIME_DIR", filepath.Join(root, "run"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	t.Chdir(root)
	return root
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	root := isolateXDG(t)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent")
	}
	want := filepath.Join(root, "config", "pwquick", "config.toml")
	if resolved != want {
		t.Fatalf("resolved = %q, want %q", resolved, want)
	}
	def := config.Default()
	if cfg.Tools != def.Tools || cfg.Volume != def.Volume || cfg.Watch != def.Watch {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if cfg.Display.Color != config.ColorAuto {
		t.Fatalf("unexpected color mode %q", cfg.Display.Color)
	}
}

func TestLoadReadsFileAndNormalizes(t *testing.T) {
	root := isolateXDG(t)
	path := filepath.Join(root, "custom.toml")
	content := `
[tools]
wpctl = "  ~/bin/wpctl "
timeout_seconds = 2

[volume]
limit = 1.5
step = 0.1

[display]
color = " NEVER "
show_unavailable_profiles = true

[logging]
level = "DEBUG"
file = "~/logs/pwquick.log"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("unexpected resolution %q %v", resolved, exists)
	}
	if cfg.Tools.Wpctl != filepath.Join(root, "bin", "wpctl") {
		t.Fatalf("expected expanded wpctl path, got %q", cfg.Tools.Wpctl)
	}
	if cfg.Tools.PwDump != "pw-dump" {
		t.Fatalf("expected default pw-dump, got %q", cfg.Tools.PwDump)
	}
	if cfg.Tools.TimeoutSeconds != 2 || cfg.Volume.Limit != 1.5 || cfg.Volume.Step != 0.1 {
		t.Fatalf("unexpected numeric settings %+v %+v", cfg.Tools, cfg.Volume)
	}
	if cfg.Display.Color != config.ColorNever || !cfg.Display.ShowUnavailableProfiles {
		t.Fatalf("unexpected display %+v", cfg.Display)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.File != filepath.Join(root, "logs", "pwquick.log") {
		t.Fatalf("unexpected logging %+v", cfg.Logging)
	}
}

func TestLoadFindsProjectFile(t *testing.T) {
	root := isolateXDG(t)
	if err := os.WriteFile(filepath.Join(root, "pwquick.toml"), []byte("[watch]\ndebounce_ms = 900\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, _, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || cfg.Watch.DebounceMS != 900 {
		t.Fatalf("expected project file to be used, got exists=%v debounce=%d", exists, cfg.Watch.DebounceMS)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	root := isolateXDG(t)
	path := filepath.Join(root, "config", "pwquick", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("[tools]\nwpctl = \"from-file\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("PWQUICK_TOOLS_WPCTL", "from-env")
	t.Setenv("PWQUICK_VOLUME_STEP", "0.02")
	t.Setenv("PWQUICK_DISPLAY_SHOW_UNAVAILABLE_PROFILES", "true")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected XDG config to be found, got %q %v", resolved, exists)
	}
	if cfg.Tools.Wpctl != "from-env" {
		t.Fatalf("expected env override, got %q", cfg.Tools.Wpctl)
	}
	if cfg.Volume.Step != 0.02 || !cfg.Display.ShowUnavailableProfiles {
		t.Fatalf("unexpected overrides %+v %+v", cfg.Volume, cfg.Display)
	}
}

func TestInvalidEnvironmentValue(t *testing.T) {
	isolateXDG(t)
	t.Setenv("PWQUICK_TOOLS_TIMEOUT_SECONDS", "soon")
	if _, _, _, err := config.Load(""); err == nil {
		t.Fatal("expected error for non-numeric override")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"negative timeout", func(c *config.Config) { c.Tools.TimeoutSeconds = -1 }, "tools.timeout_seconds"},
		{"limit too high", func(c *config.Config) { c.Volume.Limit = 2 }, "volume.limit"},
		{"step above limit", func(c *config.Config) { c.Volume.Step = 1.2 }, "volume.step"},
		{"zero step", func(c *config.Config) { c.Volume.Step = 0 }, "volume.step"},
		{"color", func(c *config.Config) { c.Display.Color = "sometimes" }, "display.color"},
		{"debounce", func(c *config.Config) { c.Watch.DebounceMS = -5 }, "watch.debounce_ms"},
		{"format", func(c *config.Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"level", func(c *config.Config) { c.Logging.Level = "trace" }, "logging.level"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %q, got %v", tc.want, err)
			}
		})
	}
}

func TestParseErrorSurfaces(t *testing.T) {
	root := isolateXDG(t)
	path := filepath.Join(root, "broken.toml")
	if err := os.WriteFile(path, []byte("[tools\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	root := isolateXDG(t)
	path := filepath.Join(root, "nested", "config.toml")
	if err := config.CreateSample(path, false); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	if err := config.CreateSample(path, false); err == nil {
		t.Fatal("expected refusal to overwrite existing config")
	}
	if err := config.CreateSample(path, true); err != nil {
		t.Fatalf("CreateSample overwrite returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	var decoded config.Config
	if err := toml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("sample is not valid TOML: %v", err)
	}
	def := config.Default()
	if decoded.Tools != def.Tools || decoded.Volume != def.Volume || decoded.Watch != def.Watch {
		t.Fatalf("sample drifted from defaults: %+v", decoded)
	}

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample failed to load: %v", err)
	}
	encoded, err := cfg.Encode()
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if !strings.Contains(string(encoded), "[tools]") || !strings.Contains(string(encoded), "wpctl") {
		t.Fatalf("unexpected encoding %s", encoded)
	}
}

func TestRuntimeFile(t *testing.T) {
	root := isolateXDG(t)
	path, err := config.RuntimeFile("menu.lock")
	if err != nil {
		t.Fatalf("RuntimeFile returned error: %v", err)
	}
	if path != filepath.Join(root, "run", "pwquick", "menu.lock") {
		t.Fatalf("unexpected runtime path %q", path)
	}
	if info, err := os.Stat(filepath.Dir(path)); err != nil || !info.IsDir() {
		t.Fatalf("expected runtime directory to exist: %v", err)
	}
}
