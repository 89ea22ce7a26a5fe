package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

// StubBinary writes an executable shell script that exits 0 and returns its path.
func StubBinary(t testing.TB, dir, name string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	target := filepath.Join(dir, name)
	if err := os.WriteFile(target, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	return target
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// IsolateXDG points HOME, the XDG base directories and the PipeWire runtime
// directory into a fresh temp dir, reloads xdg, and changes into that dir so
// a stray ./pwquick.toml cannot leak in. It returns the base directory.
func IsolateXDG(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	for _, dir := range []string{"home", "config", "runtime"} {
		if err := os.MkdirAll(filepath.Join(base, dir), 0o700); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	t.Setenv("HOME", filepath.Join(base, "home"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "config"))
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(base, "config-dirs"))
	t.Setenv("XDG_RUNTIME_DIR", filepath.Join(base, "runtime"))
	t.Setenv("PIPEWIRE_RUNTIME_DIR", filepath.Join(base, "runtime"))
	t.Setenv("PIPEWIRE_REMOTE", "")
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	t.Chdir(base)
	return base
}
