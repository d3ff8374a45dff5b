package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xdg/coderun/internal/pathutil"
)

// PathEnvVar overrides the config file location when set.
const PathEnvVar = "CODERUN_CONFIG"

// Dir returns the coderun configuration directory path.
// By default, this is ~/.config/coderun. If XDG_CONFIG_HOME is set, it uses
// $XDG_CONFIG_HOME/coderun instead.
func Dir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = "~/.config"
	}
	return filepath.Join(pathutil.ExpandHome(base), "coderun")
}

// Path returns the configuration file path: $CODERUN_CONFIG if set,
// otherwise Dir()/config.yaml.
func Path() string {
	if p := os.Getenv(PathEnvVar); p != "" {
		return pathutil.ExpandHome(p)
	}
	return filepath.Join(Dir(), "config.yaml")
}

// ensureParentDir creates the directory holding path with user-only access.
func ensureParentDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("ensure config dir: %w", err)
	}
	return nil
}
