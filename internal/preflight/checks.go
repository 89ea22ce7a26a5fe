package preflight

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"golang.org/x/sys/unix"

	"pwquick/internal/audiograph"
	"pwquick/internal/config"
	"pwquick/internal/deps"
	"pwquick/internal/services/pipewire"
)

const defaultRemoteName = "pipewire-0"

// RuntimeDir returns the directory PipeWire places its sockets in, honouring
// PIPEWIRE_RUNTIME_DIR before the XDG runtime directory.
func RuntimeDir() string {
	if dir := strings.TrimSpace(os.Getenv("PIPEWIRE_RUNTIME_DIR")); dir != "" {
		return dir
	}
	return xdg.RuntimeDir
}

// SocketPath returns the socket a client would connect to. PIPEWIRE_REMOTE may
// name an absolute path or a socket inside the runtime directory.
func SocketPath() string {
	remote := strings.TrimSpace(os.Getenv("PIPEWIRE_REMOTE"))
	if remote == "" {
		remote = defaultRemoteName
	}
	if filepath.IsAbs(remote) {
		return remote
	}
	return filepath.Join(RuntimeDir(), remote)
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	if strings.TrimSpace(path) == "" {
		return Result{Name: name, Detail: "not set"}
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckSocket verifies that path is a unix socket the current user may connect to.
func CheckSocket(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist; is pipewire running?)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if info.Mode()&os.ModeSocket == 0 {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: not a socket)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (connectable)", path)}
}

// CheckDumpSource acquires one dump and summarizes what it contains.
func CheckDumpSource(ctx context.Context, source pipewire.Source) Result {
	const name = "Graph dump"
	dump, err := source.Acquire(ctx)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	snap := audiograph.Build(dump)
	detail := fmt.Sprintf("%d objects, %d sinks, %d cards", len(dump), len(snap.Sinks()), len(snap.Cards()))
	if defaultName, ok := snap.DefaultSinkName(); ok {
		if _, matched := snap.DefaultSinkID(); !matched {
			detail += fmt.Sprintf(", default %q not among sinks", defaultName)
		}
	} else {
		detail += ", no default sink set"
	}
	return Result{Name: name, Passed: true, Detail: detail}
}

// CheckSystemDeps evaluates the command-line tools named in the config.
func CheckSystemDeps(cfg *config.Config) []deps.Status {
	requirements := []deps.Requirement{
		{
			Name:        "pw-dump",
			Command:     cfg.Tools.PwDump,
			Description: "Required to read the PipeWire graph",
		},
		{
			Name:        "wpctl",
			Command:     cfg.Tools.Wpctl,
			Description: "Required to change defaults, profiles, volume and mute",
		},
	}
	return deps.CheckBinaries(requirements)
}
