package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// DefaultConfigPath returns $XDG_CONFIG_HOME/pwquick/config.toml as an absolute path.
func DefaultConfigPath() (string, error) {
	return expandPath(filepath.Join(xdg.ConfigHome, appName, configFileName))
}

// ExpandPath resolves a leading "~" and makes the path absolute.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// locate picks the config file to read. An explicit path is used as given,
// whether or not it exists. Otherwise the candidates are the XDG config home,
// the XDG_CONFIG_DIRS search path, and ./pwquick.toml, in that order.
func locate(explicit string) (string, bool, error) {
	if explicit != "" {
		path, err := expandPath(explicit)
		if err != nil {
			return "", false, err
		}
		found, err := isFile(path)
		return path, found, err
	}

	home, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	candidates := []string{home}
	if system, err := xdg.SearchConfigFile(filepath.Join(appName, configFileName)); err == nil {
		candidates = append(candidates, system)
	}
	if project, err := filepath.Abs(projectFileName); err == nil {
		candidates = append(candidates, project)
	}
	for _, candidate := range candidates {
		if found, _ := isFile(candidate); found {
			return candidate, true, nil
		}
	}
	return home, false, nil
}

func isFile(path string) (bool, error) {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("stat config %s: %w", path, err)
	case info.IsDir():
		return false, fmt.Errorf("config path %s is a directory", path)
	}
	return true, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return "", nil
	}
	if pathValue == "~" || strings.HasPrefix(pathValue, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		pathValue = filepath.Join(home, strings.TrimPrefix(pathValue, "~"))
	}
	absolute, err := filepath.Abs(pathValue)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}
