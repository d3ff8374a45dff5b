package config

import (
	"slices"
	"time"

	"github.com/xdg/coderun/internal/executor"
)

// Registry returns the configured evaluators as an executor.Registry.
// The result is a copy; changing it does not change cfg.
func (c *Config) Registry() executor.Registry {
	reg := make(executor.Registry, len(c.Evaluators))
	for name, tokens := range c.Evaluators {
		reg[name] = slices.Clone(tokens)
	}
	return reg
}

// EvaluatorNames returns the configured evaluator names in sorted order.
func (c *Config) EvaluatorNames() []string {
	names := make([]string, 0, len(c.Evaluators))
	for name := range c.Evaluators {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// PollDuration returns poll_interval as a duration, falling back to
// DefaultPollInterval when unset or invalid.
func (c *Config) PollDuration() time.Duration {
	if d, err := time.ParseDuration(c.PollInterval); err == nil && d > 0 {
		return d
	}
	d, _ := time.ParseDuration(DefaultPollInterval)
	return d
}

// DrainMode returns the configured drain mode, falling back to sequential.
func (c *Config) DrainMode() executor.DrainMode {
	mode, err := executor.ParseDrainMode(c.Drain)
	if err != nil {
		return executor.DrainSequential
	}
	return mode
}

// LaunchOptions returns the executor options derived from cfg.
func (c *Config) LaunchOptions() []executor.Option {
	return []executor.Option{
		executor.WithShell(c.Shell),
		executor.WithTempDir(c.TempDir),
		executor.WithDrainMode(c.DrainMode()),
	}
}
