package config

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/xdg/coderun/internal/clog"
	"github.com/xdg/coderun/internal/executor"
)

// ReservedEvaluatorName cannot be used as a custom evaluator name because the
// CLI uses it for the built-in shell.
const ReservedEvaluatorName = "shell"

// Validate checks that all set fields of cfg contain valid values:
//   - shell is a single token
//   - poll_interval is a positive duration
//   - drain is "sequential" or "concurrent"
//   - every evaluator has a usable name and at least one non-empty token
//   - log.level is one of: debug, info, warn, error
//
// Returns nil if the config is valid, or an error naming the invalid field.
func Validate(cfg *Config) error {
	if cfg.Shell != "" && strings.ContainsAny(cfg.Shell, " \t\n") {
		return fmt.Errorf("shell: must be a single token, got %q", cfg.Shell)
	}

	if cfg.PollInterval != "" {
		d, err := time.ParseDuration(cfg.PollInterval)
		if err != nil {
			return fmt.Errorf("poll_interval: invalid duration %q: %w", cfg.PollInterval, err)
		}
		if d <= 0 {
			return fmt.Errorf("poll_interval: must be positive, got %q", cfg.PollInterval)
		}
	}

	if _, err := executor.ParseDrainMode(cfg.Drain); err != nil {
		return fmt.Errorf("drain: %w, must be one of: sequential, concurrent", err)
	}

	names := make([]string, 0, len(cfg.Evaluators))
	for name := range cfg.Evaluators {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if err := validateEvaluator(name, cfg.Evaluators[name]); err != nil {
			return err
		}
	}

	if cfg.Log.Level != "" {
		if _, err := clog.ParseLevel(cfg.Log.Level); err != nil {
			return fmt.Errorf("log.level: invalid value %q, must be one of: debug, info, warn, error", cfg.Log.Level)
		}
	}

	return nil
}

func validateEvaluator(name string, tokens []string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("evaluators: name must not be empty")
	}
	if name == ReservedEvaluatorName {
		return fmt.Errorf("evaluators.%s: name is reserved for the built-in shell", name)
	}
	if len(tokens) == 0 {
		return fmt.Errorf("evaluators.%s: must have at least one command token", name)
	}
	for i, tok := range tokens {
		if tok == "" {
			return fmt.Errorf("evaluators.%s[%d]: token must not be empty", name, i)
		}
	}
	return nil
}
