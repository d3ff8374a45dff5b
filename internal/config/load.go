package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/xdg/coderun/internal/clog"
	"github.com/xdg/coderun/internal/pathutil"
)

// Load reads the configuration at path, or at Path() when path is empty.
// A missing file yields Default(). A file that cannot be read, parsed or
// validated is an error. Values from the file are merged over the defaults
// and ~ in path fields is expanded.
func Load(path string) (*Config, error) {
	if path == "" {
		path = Path()
	}
	clog.Debug("config: loading %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			clog.Debug("config: %s not found, using defaults", path)
			cfg := Default()
			expandPaths(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	fileCfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := Validate(fileCfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	cfg := Merge(Default(), fileCfg)
	expandPaths(cfg)
	return cfg, nil
}

func expandPaths(cfg *Config) {
	cfg.TempDir = pathutil.ExpandHome(cfg.TempDir)
	cfg.AuditFile = pathutil.ExpandHome(cfg.AuditFile)
	cfg.Log.File = pathutil.ExpandHome(cfg.Log.File)
}
